package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(DirEnv, "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	dir := filepath.Join(home, ".boxtools")
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "state.toml"), cfg.State.StatePath)
	assert.Equal(t, filepath.Join(dir, "aliases.txt"), cfg.State.AliasesPath)
	assert.Equal(t, filepath.Join(dir, "auth-tokens.json"), cfg.Auth.TokensPath)
	assert.Equal(t, DefaultRedirectURL, cfg.Auth.RedirectURL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, DefaultHistorySize, cfg.History.Size)
	assert.Equal(t, DefaultRecentSize, cfg.History.RecentSize)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, TokenStoreFile, cfg.Auth.TokenStore)
	assert.Equal(t, DefaultPassEntry, cfg.Auth.PassEntry)
	assert.Equal(t, cfg.State.StatePath, cfg.Viper().GetString(KeyStatePath))
}

func TestLoadReadsFileFromBoxtoolsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`
[auth]
client-id = "cid"
client-secret = "secret"

[history]
size = 50
recent-size = 5

[state]
path = "custom/state.toml"

[api]
base-url = "http://localhost:9999/2.0/"
timeout = "5s"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "cid", cfg.Auth.ClientID)
	assert.Equal(t, "secret", cfg.Auth.ClientSecret)
	assert.Equal(t, 50, cfg.History.Size)
	assert.Equal(t, 5, cfg.History.RecentSize)
	assert.Equal(t, filepath.Join(dir, "custom", "state.toml"), cfg.State.StatePath)
	assert.Equal(t, "http://localhost:9999/2.0", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Path)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)
	t.Setenv("BOXTOOLS_API_BASE_URL", "http://127.0.0.1:1/2.0")
	t.Setenv("BOXTOOLS_HISTORY_SIZE", "3")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1/2.0", cfg.API.BaseURL)
	assert.Equal(t, 3, cfg.History.Size)
}

func TestLoadRejectsNonPositiveHistorySize(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[history]\nsize = 0\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.size must be positive")
}

func TestLoadTokenStoreFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)
	t.Setenv("BOXTOOLS_AUTH_TOKEN_STORE", "Pass")
	t.Setenv("BOXTOOLS_AUTH_PASS_ENTRY", "work/box")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, TokenStorePass, cfg.Auth.TokenStore)
	assert.Equal(t, "work/box", cfg.Auth.PassEntry)
}

func TestLoadRejectsUnknownTokenStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[auth]\ntoken-store = \"keychain\"\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.token-store")
}

func TestWriteDefaultThenLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)
	path := filepath.Join(dir, FileName)

	require.NoError(t, WriteDefault(path, "cid", "secret", false))
	err := WriteDefault(path, "other", "other", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "cid", cfg.Auth.ClientID)
	assert.Equal(t, filepath.Join(dir, "auth-tokens.json"), cfg.Auth.TokensPath)

	rendered, err := cfg.Render()
	require.NoError(t, err)
	assert.Contains(t, rendered, "cid")
	assert.Contains(t, rendered, "********")
}
