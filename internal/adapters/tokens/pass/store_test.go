package pass

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const storedToken = `{
  "access_token": "access-1",
  "refresh_token": "refresh-1",
  "token_type": "Bearer",
  "expiry": "2030-01-02T03:04:05Z"
}
`

func TestStoreSaveUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		entry: "boxtools/auth-tokens",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, context.Background(), ctx)
			assert.Equal(t, []string{"insert", "-m", "-f", "boxtools/auth-tokens"}, args)
			assert.Equal(t, storedToken, input)
			return "", "", nil
		},
	}

	err := store.Save(context.Background(), &oauth2.Token{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		Expiry:       time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreLoadUsesPassShow(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: "boxtools/auth-tokens",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "boxtools/auth-tokens"}, args)
			assert.Empty(t, input)
			return storedToken, "", nil
		},
	}

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.Equal(t, "refresh-1", token.RefreshToken)
	assert.True(t, token.Expiry.Equal(time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestStoreLoadMissingEntryIsNotAuthorized(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: "boxtools/auth-tokens",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: boxtools/auth-tokens is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestStoreLoadReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: "boxtools/auth-tokens",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotAuthorized)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, "boxtools/auth-tokens")
	assert.ErrorContains(t, err, "decryption failed")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: "boxtools/auth-tokens",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "boxtools/auth-tokens"}, args)
			return "", "Error: boxtools/auth-tokens is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Delete(context.Background()))
}

func TestNewStoreDefaultsEntry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultEntry, NewStore("  ").Entry())
	assert.Equal(t, "work/box", NewStore("work/box").Entry())
}
