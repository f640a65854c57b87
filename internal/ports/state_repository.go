package ports

import (
	"context"

	"github.com/bnema/boxtools-cli/internal/domain"
)

// StateRepository persists the session snapshot as a single unit.
// Load returns an empty snapshot when nothing was saved yet.
type StateRepository interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
}

type AliasRepository interface {
	Load(ctx context.Context) ([]domain.Alias, error)
	Save(ctx context.Context, aliases []domain.Alias) error
}
