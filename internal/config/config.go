// Package config loads boxtools.toml and BOXTOOLS_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/boxtools-cli/internal/atomicfile"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DirEnv     = "BOXTOOLS_DIR"
	EnvPrefix  = "BOXTOOLS"
	FileName   = "boxtools.toml"
	defaultDir = ".boxtools"
	configName = "boxtools"
	configType = "toml"
	fileMode   = 0o600
)

const (
	KeyClientID     = "auth.client-id"
	KeyClientSecret = "auth.client-secret"
	KeyRedirectURL  = "auth.redirect-url"
	KeyAuthURL      = "auth.auth-url"
	KeyTokenURL     = "auth.token-url"
	KeyTokensPath   = "auth.tokens-path"
	KeyTokenStore   = "auth.token-store"
	KeyPassEntry    = "auth.pass-entry"
	KeyAPIBaseURL   = "api.base-url"
	KeyAPITimeout   = "api.timeout"
	KeyHistorySize  = "history.size"
	KeyRecentSize   = "history.recent-size"
	KeyStatePath    = "state.path"
	KeyAliasesPath  = "aliases.path"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

const (
	DefaultRedirectURL = "http://127.0.0.1:18444"
	DefaultAuthURL     = "https://account.box.com/api/oauth2/authorize"
	DefaultTokenURL    = "https://api.box.com/oauth2/token"
	DefaultTokenStore  = TokenStoreFile
	DefaultPassEntry   = "boxtools/auth-tokens"
	DefaultAPIBaseURL  = "https://api.box.com/2.0"
	DefaultAPITimeout  = 30 * time.Second
	DefaultHistorySize = 2000
	DefaultRecentSize  = 20
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "console"
)

// Token store backends.
const (
	TokenStoreFile = "file"
	TokenStorePass = "pass"
)

type Config struct {
	Dir     string
	Path    string
	Auth    AuthConfig
	API     APIConfig
	History HistoryConfig
	State   StateConfig
	Log     LogConfig

	v *viper.Viper
}

type AuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	TokensPath   string
	TokenStore   string
	PassEntry    string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type HistoryConfig struct {
	Size       int
	RecentSize int
}

type StateConfig struct {
	StatePath   string
	AliasesPath string
}

type LogConfig struct {
	Level  string
	Format string
}

// Dir returns $BOXTOOLS_DIR, or ~/.boxtools when it is unset.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, defaultDir), nil
}

// Load reads the configuration into v. A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v, dir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Dir:  dir,
		Path: filepath.Join(dir, FileName),
		Auth: AuthConfig{
			ClientID:     v.GetString(KeyClientID),
			ClientSecret: v.GetString(KeyClientSecret),
			RedirectURL:  v.GetString(KeyRedirectURL),
			AuthURL:      v.GetString(KeyAuthURL),
			TokenURL:     v.GetString(KeyTokenURL),
			TokensPath:   expandPath(dir, v.GetString(KeyTokensPath)),
			TokenStore:   strings.ToLower(strings.TrimSpace(v.GetString(KeyTokenStore))),
			PassEntry:    v.GetString(KeyPassEntry),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString(KeyAPIBaseURL), "/"),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		History: HistoryConfig{
			Size:       v.GetInt(KeyHistorySize),
			RecentSize: v.GetInt(KeyRecentSize),
		},
		State: StateConfig{
			StatePath:   expandPath(dir, v.GetString(KeyStatePath)),
			AliasesPath: expandPath(dir, v.GetString(KeyAliasesPath)),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		v: v,
	}
	if used := v.ConfigFileUsed(); used != "" {
		cfg.Path = used
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Adapters read their paths from viper; keep them in sync with the
	// expanded values.
	v.Set(KeyStatePath, cfg.State.StatePath)
	v.Set(KeyAliasesPath, cfg.State.AliasesPath)
	v.Set(KeyTokensPath, cfg.Auth.TokensPath)

	return cfg, nil
}

func (c *Config) Viper() *viper.Viper {
	return c.v
}

func (c *Config) validate() error {
	if c.History.Size <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyHistorySize, c.History.Size)
	}
	if c.History.RecentSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyRecentSize, c.History.RecentSize)
	}
	switch c.Auth.TokenStore {
	case TokenStoreFile, TokenStorePass:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", KeyTokenStore, TokenStoreFile, TokenStorePass, c.Auth.TokenStore)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyAPITimeout, c.API.Timeout)
	}
	return nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyRedirectURL, DefaultRedirectURL)
	v.SetDefault(KeyAuthURL, DefaultAuthURL)
	v.SetDefault(KeyTokenURL, DefaultTokenURL)
	v.SetDefault(KeyTokensPath, filepath.Join(dir, "auth-tokens.json"))
	v.SetDefault(KeyTokenStore, DefaultTokenStore)
	v.SetDefault(KeyPassEntry, DefaultPassEntry)
	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyAPITimeout, DefaultAPITimeout)
	v.SetDefault(KeyHistorySize, DefaultHistorySize)
	v.SetDefault(KeyRecentSize, DefaultRecentSize)
	v.SetDefault(KeyStatePath, filepath.Join(dir, "state.toml"))
	v.SetDefault(KeyAliasesPath, filepath.Join(dir, "aliases.txt"))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// expandPath resolves "~/" and makes relative paths relative to dir.
func expandPath(dir, path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, rest)
		}
	}
	if path != "" && !filepath.IsAbs(path) {
		return filepath.Join(dir, path)
	}
	return path
}

type fileSchema struct {
	Auth    authSchema    `toml:"auth"`
	API     apiSchema     `toml:"api"`
	History historySchema `toml:"history"`
	State   stateSchema   `toml:"state"`
	Aliases aliasesSchema `toml:"aliases"`
	Log     logSchema     `toml:"log"`
}

type authSchema struct {
	ClientID     string `toml:"client-id"`
	ClientSecret string `toml:"client-secret"`
	RedirectURL  string `toml:"redirect-url"`
	TokensPath   string `toml:"tokens-path"`
	TokenStore   string `toml:"token-store"`
	PassEntry    string `toml:"pass-entry"`
}

type apiSchema struct {
	BaseURL string `toml:"base-url"`
	Timeout string `toml:"timeout"`
}

type historySchema struct {
	Size       int `toml:"size"`
	RecentSize int `toml:"recent-size"`
}

type stateSchema struct {
	Path string `toml:"path"`
}

type aliasesSchema struct {
	Path string `toml:"path"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func (c *Config) toSchema(redact bool) fileSchema {
	secret := c.Auth.ClientSecret
	if redact && secret != "" {
		secret = "********"
	}

	return fileSchema{
		Auth: authSchema{
			ClientID:     c.Auth.ClientID,
			ClientSecret: secret,
			RedirectURL:  c.Auth.RedirectURL,
			TokensPath:   c.Auth.TokensPath,
			TokenStore:   c.Auth.TokenStore,
			PassEntry:    c.Auth.PassEntry,
		},
		API:     apiSchema{BaseURL: c.API.BaseURL, Timeout: c.API.Timeout.String()},
		History: historySchema{Size: c.History.Size, RecentSize: c.History.RecentSize},
		State:   stateSchema{Path: c.State.StatePath},
		Aliases: aliasesSchema{Path: c.State.AliasesPath},
		Log:     logSchema{Level: c.Log.Level, Format: c.Log.Format},
	}
}

// Render returns the effective configuration as TOML with the client
// secret masked.
func (c *Config) Render() (string, error) {
	data, err := toml.Marshal(c.toSchema(true))
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// WriteDefault writes a starter boxtools.toml with the given credentials.
// It refuses to overwrite an existing file unless force is set.
func WriteDefault(path, clientID, clientSecret string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	file := fileSchema{
		Auth: authSchema{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  DefaultRedirectURL,
			TokensPath:   "auth-tokens.json",
			TokenStore:   DefaultTokenStore,
			PassEntry:    DefaultPassEntry,
		},
		API:     apiSchema{BaseURL: DefaultAPIBaseURL, Timeout: DefaultAPITimeout.String()},
		History: historySchema{Size: DefaultHistorySize, RecentSize: DefaultRecentSize},
		State:   stateSchema{Path: "state.toml"},
		Aliases: aliasesSchema{Path: "aliases.txt"},
		Log:     logSchema{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := atomicfile.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
