package ports

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenStore persists the OAuth token. Load reports a missing token with an
// error wrapping domain.ErrNotAuthorized.
type TokenStore interface {
	Load(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, token *oauth2.Token) error
	Delete(ctx context.Context) error
}
