package resolver

import (
	"context"
	"fmt"

	"github.com/bnema/boxtools-cli/internal/domain"
)

// FailChooser refuses to pick, for callers that cannot ask the user.
type FailChooser struct{}

func (FailChooser) Choose(_ context.Context, token string, candidates []domain.Item) (int, error) {
	return -1, fmt.Errorf("%w: %s matches %d items (append ! to take the newest)", ErrAmbiguous, token, len(candidates))
}

// NewestChooser always picks the most recently seen candidate.
type NewestChooser struct{}

func (NewestChooser) Choose(_ context.Context, _ string, candidates []domain.Item) (int, error) {
	return len(candidates) - 1, nil
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(ctx context.Context, token string, candidates []domain.Item) (int, error)

func (f ChooserFunc) Choose(ctx context.Context, token string, candidates []domain.Item) (int, error) {
	return f(ctx, token, candidates)
}
