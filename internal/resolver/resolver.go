// Package resolver turns short user tokens into item IDs using the alias
// table, the item history and the recently listed folders.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/state"
	"go.uber.org/zap"
)

var (
	ErrInvalidToken     = errors.New("invalid reference")
	ErrUnknownAlias     = errors.New("unknown alias")
	ErrNoMatch          = errors.New("no match")
	ErrAmbiguous        = errors.New("ambiguous reference")
	ErrSelectionAborted = errors.New("selection aborted")
	ErrNoPreviousID     = errors.New("no previous id")
	ErrNoCurrentFolder  = errors.New("no current folder")
	ErrNoParentFolder   = errors.New("current folder has no known parent")
)

// Chooser picks one of several candidates, returning its index.
// Candidates are ordered oldest first.
type Chooser interface {
	Choose(ctx context.Context, token string, candidates []domain.Item) (int, error)
}

type Options struct {
	Chooser     Chooser
	Diagnostics io.Writer
	Logger      *zap.Logger
}

type Resolver struct {
	session *state.Session
	chooser Chooser
	diag    io.Writer
	logger  *zap.Logger
}

func New(session *state.Session, opts Options) *Resolver {
	if opts.Chooser == nil {
		opts.Chooser = FailChooser{}
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Resolver{
		session: session,
		chooser: opts.Chooser,
		diag:    opts.Diagnostics,
		logger:  opts.Logger,
	}
}

// WithChooser returns a copy of r that disambiguates with chooser.
func (r *Resolver) WithChooser(chooser Chooser) *Resolver {
	clone := *r
	clone.chooser = chooser
	return &clone
}

// Resolve maps token to an item ID. Failures are reported on the diagnostics
// writer and signalled by ok == false; they are never returned as errors.
// A successful resolution becomes the previous ID for "-".
func (r *Resolver) Resolve(ctx context.Context, token string) (domain.ItemID, bool) {
	id, err := r.resolve(ctx, token)
	if err != nil {
		r.report(token, err)
		return "", false
	}

	r.session.SetLastID(id)
	return id, true
}

// ResolveAll resolves every token in order and fails as a whole if any of
// them fails. Later tokens see earlier results through "-".
func (r *Resolver) ResolveAll(ctx context.Context, tokens []string) ([]domain.ItemID, bool) {
	out := make([]domain.ItemID, 0, len(tokens))
	for _, token := range tokens {
		id, ok := r.Resolve(ctx, token)
		if !ok {
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

// Classify reports which grammar rule would handle token.
func (r *Resolver) Classify(token string) (Rule, error) {
	q, err := parse(strings.TrimSpace(token))
	return q.rule, err
}

// Candidates returns the history entries a search token matches, oldest
// first. Non-search tokens yield no candidates.
func (r *Resolver) Candidates(token string) ([]domain.Item, error) {
	q, err := parse(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	if !q.rule.Searches() {
		return nil, nil
	}
	return r.scan(q), nil
}

func (r *Resolver) resolve(ctx context.Context, raw string) (domain.ItemID, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	q, err := parse(token)
	if err != nil {
		return "", err
	}
	r.logger.Debug("resolving reference",
		zap.String("token", token),
		zap.Stringer("rule", q.rule),
		zap.Bool("newest", q.newest),
	)

	switch q.rule {
	case RulePrevious:
		id, ok := r.session.LastID()
		if !ok {
			return "", ErrNoPreviousID
		}
		return id, nil
	case RuleRoot:
		return domain.RootFolderID, nil
	case RuleCurrent:
		current, ok := r.session.Recent().MostRecent()
		if !ok {
			return "", ErrNoCurrentFolder
		}
		return current.ID, nil
	case RuleParent:
		current, ok := r.session.Recent().MostRecent()
		if !ok {
			return "", ErrNoCurrentFolder
		}
		if current.ParentID == "" {
			return "", fmt.Errorf("%w: %s", ErrNoParentFolder, current.Name)
		}
		return current.ParentID, nil
	case RuleAlias:
		alias, ok := r.session.Aliases().Lookup(q.term)
		if !ok {
			return "", fmt.Errorf("%w %q", ErrUnknownAlias, q.term)
		}
		return alias.ID, nil
	case RuleLiteralID:
		return domain.ItemID(q.term), nil
	}

	candidates := r.scan(q)
	r.logger.Debug("reference candidates",
		zap.String("token", token),
		zap.Int("count", len(candidates)),
	)

	return r.pick(ctx, token, q, candidates)
}

func (r *Resolver) scan(q query) []domain.Item {
	var out []domain.Item
	for it := range r.session.History().Entries(state.Query{Order: state.OldestFirst, Filter: q.match}) {
		out = append(out, it)
	}
	return out
}

func (r *Resolver) pick(ctx context.Context, token string, q query, candidates []domain.Item) (domain.ItemID, error) {
	switch {
	case len(candidates) == 0:
		return "", fmt.Errorf("%w for %s", ErrNoMatch, token)
	case len(candidates) == 1:
		return candidates[0].ID, nil
	case q.newest:
		return candidates[len(candidates)-1].ID, nil
	}

	idx, err := r.chooser.Choose(ctx, token, candidates)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(candidates) {
		return "", ErrSelectionAborted
	}
	return candidates[idx].ID, nil
}

func (r *Resolver) report(token string, err error) {
	if errors.Is(err, ErrSelectionAborted) {
		r.logger.Debug("selection aborted", zap.String("token", token), zap.Error(err))
		return
	}
	_, _ = fmt.Fprintf(r.diag, "%s\n", err)
}
