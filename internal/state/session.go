package state

import (
	"github.com/bnema/boxtools-cli/internal/domain"
	"go.uber.org/zap"
)

// Session owns the per-process lookup state: item history, aliases, the
// recently listed folders and the last resolved ID. Mutations go through
// Session so it can tell whether anything needs to be written back.
type Session struct {
	history *History
	recent  *RecentFolders
	aliases *AliasTable
	lastID  domain.ItemID
	logger  *zap.Logger

	stateDirty   bool
	aliasesDirty bool
}

type SessionOptions struct {
	HistorySize int
	RecentSize  int
	Logger      *zap.Logger
}

func NewSession(opts SessionOptions) (*Session, error) {
	if opts.HistorySize == 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.RecentSize == 0 {
		opts.RecentSize = DefaultRecentSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	history, err := NewHistory(opts.HistorySize)
	if err != nil {
		return nil, err
	}
	recent, err := NewRecentFolders(opts.RecentSize)
	if err != nil {
		return nil, err
	}

	return &Session{
		history: history,
		recent:  recent,
		aliases: NewAliasTable(),
		logger:  opts.Logger,
	}, nil
}

func (s *Session) History() *History { return s.history }
func (s *Session) Recent() *RecentFolders { return s.recent }
func (s *Session) Aliases() *AliasTable { return s.aliases }
func (s *Session) StateDirty() bool { return s.stateDirty }
func (s *Session) AliasesDirty() bool { return s.aliasesDirty }
func (s *Session) LastID() (domain.ItemID, bool) { return s.lastID, s.lastID != "" }

// Restore replaces history, recent folders and last ID with a snapshot.
// Entries beyond the configured capacities are dropped oldest first.
func (s *Session) Restore(snapshot domain.Snapshot) {
	s.history.Clear()
	dropped := 0
	for _, item := range snapshot.History {
		if s.history.Touch(item) {
			dropped++
		}
	}
	if dropped > 0 {
		s.logger.Debug("history snapshot exceeds capacity",
			zap.Int("dropped", dropped),
			zap.Int("capacity", s.history.Capacity()),
		)
		s.stateDirty = true
	}

	s.recent.Clear()
	for _, folder := range snapshot.Recent {
		s.recent.Push(folder)
	}
	if trimmed := len(snapshot.Recent) - s.recent.Len(); trimmed > 0 {
		s.logger.Debug("recent folders snapshot trimmed",
			zap.Int("dropped", trimmed),
			zap.Int("capacity", s.recent.Capacity()),
		)
		s.stateDirty = true
	}
	s.lastID = snapshot.LastID
}

func (s *Session) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		History: s.history.Items(),
		LastID:  s.lastID,
		Recent:  s.recent.All(),
	}
}

// LoadAliases replaces the alias table without marking it dirty.
func (s *Session) LoadAliases(aliases []domain.Alias) {
	s.aliases = NewAliasTable(aliases...)
}

// Observe records fresh metadata for items, newest last.
func (s *Session) Observe(items ...domain.Item) {
	if len(items) == 0 {
		return
	}

	evicted := 0
	for _, item := range items {
		if s.history.Touch(item) {
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Debug("history evicted entries", zap.Int("count", evicted))
	}
	s.stateDirty = true
}

func (s *Session) Forget(ids ...domain.ItemID) int {
	removed := 0
	for _, id := range ids {
		if s.history.Remove(id) {
			removed++
		}
	}
	if removed > 0 {
		s.stateDirty = true
	}
	return removed
}

func (s *Session) ClearHistory() {
	s.history.Clear()
	s.stateDirty = true
}

// ListedFolder records folder in the recent folders queue.
func (s *Session) ListedFolder(folder domain.Item) {
	if s.recent.Push(domain.RecentFolderFromItem(folder)) {
		s.stateDirty = true
	}
}

func (s *Session) ClearRecent() {
	s.recent.Clear()
	s.stateDirty = true
}

func (s *Session) SetLastID(id domain.ItemID) {
	if id == s.lastID {
		return
	}
	s.lastID = id
	s.stateDirty = true
}

func (s *Session) DefineAlias(name string, id domain.ItemID, comment string) (domain.Alias, error) {
	alias, err := s.aliases.Define(name, id, comment)
	if err != nil {
		return domain.Alias{}, err
	}
	s.aliasesDirty = true
	return alias, nil
}

func (s *Session) UndefineAlias(name string) error {
	if err := s.aliases.Undefine(name); err != nil {
		return err
	}
	s.aliasesDirty = true
	return nil
}

// MarkSaved clears the dirty flags after a successful write.
func (s *Session) MarkSaved(state, aliases bool) {
	if state {
		s.stateDirty = false
	}
	if aliases {
		s.aliasesDirty = false
	}
}
