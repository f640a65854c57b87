package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewStore("   ")
	require.Error(t, err)
	assert.ErrorContains(t, err, "token path is empty")
}

func TestStoreSaveLoadRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "auth-tokens.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := &oauth2.Token{AccessToken: "at", RefreshToken: "rt", TokenType: "bearer", Expiry: expiry}
	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at", got.AccessToken)
	assert.Equal(t, "rt", got.RefreshToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.True(t, expiry.Equal(got.Expiry))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFileMode), info.Mode().Perm())
}

func TestStoreLoadMissingIsNotAuthorized(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "auth-tokens.json"))
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestStoreLoadRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "auth-tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode token from token file")
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "auth-tokens.json"))
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), &oauth2.Token{AccessToken: "at"}))

	require.NoError(t, store.Delete(context.Background()))
	require.NoError(t, store.Delete(context.Background()))

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
}
