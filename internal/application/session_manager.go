package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/bnema/boxtools-cli/internal/state"
	"go.uber.org/zap"
)

// SessionManager restores a session from its repositories and writes back
// only the parts that changed.
type SessionManager struct {
	states  ports.StateRepository
	aliases ports.AliasRepository
	opts    state.SessionOptions
	logger  *zap.Logger
}

func NewSessionManager(states ports.StateRepository, aliases ports.AliasRepository, opts state.SessionOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionManager{
		states:  states,
		aliases: aliases,
		opts:    opts,
		logger:  logger,
	}
}

func (m *SessionManager) Open(ctx context.Context) (*state.Session, error) {
	session, err := state.NewSession(m.opts)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	snapshot, err := m.states.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	aliases, err := m.aliases.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aliases: %w", err)
	}

	session.Restore(snapshot)
	session.LoadAliases(aliases)

	m.logger.Debug("session restored",
		zap.Int("history", session.History().Len()),
		zap.Int("recent", session.Recent().Len()),
		zap.Int("aliases", session.Aliases().Len()),
	)

	return session, nil
}

// Save flushes dirty state. The state and the alias file are written
// independently and each is marked saved on its own, so one failing write
// never loses the other.
func (m *SessionManager) Save(ctx context.Context, session *state.Session) error {
	var stateErr, aliasErr error

	if session.StateDirty() {
		if err := m.states.Save(ctx, session.Snapshot()); err != nil {
			stateErr = fmt.Errorf("save state: %w", err)
		} else {
			session.MarkSaved(true, false)
			m.logger.Debug("state saved", zap.Int("history", session.History().Len()))
		}
	}

	if session.AliasesDirty() {
		if err := m.aliases.Save(ctx, session.Aliases().List(state.AliasFilter{})); err != nil {
			aliasErr = fmt.Errorf("save aliases: %w", err)
		} else {
			session.MarkSaved(false, true)
			m.logger.Debug("aliases saved", zap.Int("aliases", session.Aliases().Len()))
		}
	}

	return errors.Join(stateErr, aliasErr)
}
