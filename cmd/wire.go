package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/boxtools-cli/internal/adapters/auth"
	"github.com/bnema/boxtools-cli/internal/adapters/box"
	"github.com/bnema/boxtools-cli/internal/adapters/prompt"
	"github.com/bnema/boxtools-cli/internal/adapters/repo/aliasfile"
	tomlrepo "github.com/bnema/boxtools-cli/internal/adapters/repo/toml"
	tokenchain "github.com/bnema/boxtools-cli/internal/adapters/tokens/chain"
	tokenfile "github.com/bnema/boxtools-cli/internal/adapters/tokens/file"
	tokenpass "github.com/bnema/boxtools-cli/internal/adapters/tokens/pass"
	"github.com/bnema/boxtools-cli/internal/application"
	"github.com/bnema/boxtools-cli/internal/config"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/logging"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/bnema/boxtools-cli/internal/resolver"
	"github.com/bnema/boxtools-cli/internal/state"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// errResolutionFailed aborts a command whose item reference could not be
// resolved. The resolver has already printed the reason.
var errResolutionFailed = errors.New("item reference not resolved")

// Annotation values for annotationNeeds. Commands without the annotation
// need the full session.
const (
	annotationNeeds = "bx:needs"
	needsNothing    = "nothing"
	needsConfig     = "config"
)

type rootOptions struct {
	noPrompt bool
	logLevel string
}

// app holds everything a command tree needs. It is opened once by the
// first command that runs and shared by every command tree of a shell.
type app struct {
	opts rootOptions

	stdin  io.Reader
	stderr io.Writer

	cfg      *config.Config
	logger   *zap.Logger
	tokens   ports.TokenStore
	sessions *application.SessionManager
	session  *state.Session
	resolver *resolver.Resolver
	input    *prompt.LineReader
	service  *application.Service

	shellOnStdin bool
	configured   bool
	opened       bool
}

func (a *app) open(cmd *cobra.Command, opts rootOptions) error {
	needs := annotationFor(cmd)
	if needs == needsNothing {
		return nil
	}

	if !a.configured {
		a.opts = opts
		a.stdin = cmd.InOrStdin()
		a.stderr = cmd.ErrOrStderr()

		if err := a.loadConfig(); err != nil {
			return err
		}
		a.configured = true
	}

	if needs == needsConfig || a.opened {
		return nil
	}

	if err := a.openSession(cmd.Context()); err != nil {
		return err
	}
	a.opened = true
	return nil
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if a.opts.logLevel != "" {
		level = a.opts.logLevel
	}
	logger, err := logging.New(logging.Config{Level: level, Format: cfg.Log.Format, Output: a.stderr})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	tokens, err := newTokenStore(cfg.Auth)
	if err != nil {
		return fmt.Errorf("wire token store: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.tokens = tokens
	return nil
}

// newTokenStore keeps tokens in the token file, or in pass with the token
// file as fallback.
func newTokenStore(cfg config.AuthConfig) (ports.TokenStore, error) {
	file, err := tokenfile.NewStore(cfg.TokensPath)
	if err != nil {
		return nil, err
	}
	if cfg.TokenStore != config.TokenStorePass {
		return file, nil
	}
	return tokenchain.NewStore(tokenpass.NewStore(cfg.PassEntry), file)
}

func (a *app) openSession(ctx context.Context) error {
	states, err := tomlrepo.NewStateRepository(a.cfg.Viper())
	if err != nil {
		return fmt.Errorf("wire state repository: %w", err)
	}
	aliases, err := aliasfile.NewRepository(a.cfg.Viper(), a.logger.Named("aliases"))
	if err != nil {
		return fmt.Errorf("wire alias repository: %w", err)
	}

	a.sessions = application.NewSessionManager(states, aliases, state.SessionOptions{
		HistorySize: a.cfg.History.Size,
		RecentSize:  a.cfg.History.RecentSize,
		Logger:      a.logger.Named("session"),
	})

	session, err := a.sessions.Open(ctx)
	if err != nil {
		return err
	}

	a.session = session
	a.resolver = resolver.New(session, resolver.Options{
		Chooser:     a.chooser(),
		Diagnostics: a.stderr,
		Logger:      a.logger.Named("resolver"),
	})
	return nil
}

// close writes back whatever the session changed. It is a no-op when no
// session was opened.
func (a *app) close(ctx context.Context) error {
	if a.logger != nil {
		defer func() { _ = a.logger.Sync() }()
	}
	if !a.opened {
		return nil
	}
	return a.sessions.Save(ctx, a.session)
}

// lineReader returns the reader shared by the shell and the chooser, so a
// selection prompt inside a shell consumes the next input line.
func (a *app) lineReader() *prompt.LineReader {
	if a.input == nil {
		a.input = prompt.NewLineReader(a.stdin)
	}
	return a.input
}

// chooser prompts on stderr unless prompting is disabled or stdin is a
// non-interactive file outside a stdin-driven shell.
func (a *app) chooser() resolver.Chooser {
	if a.opts.noPrompt {
		return resolver.FailChooser{}
	}
	if f, ok := a.stdin.(*os.File); ok && !a.shellOnStdin && !isTerminal(f) {
		return resolver.FailChooser{}
	}
	return prompt.NewChooser(a.lineReader(), a.stderr)
}

// useShellInput switches disambiguation to the shell's input stream.
func (a *app) useShellInput() {
	a.shellOnStdin = true
	a.resolver = a.resolver.WithChooser(a.chooser())
}

func (a *app) resolve(ctx context.Context, token string) (domain.ItemID, error) {
	id, ok := a.resolver.Resolve(ctx, token)
	if !ok {
		return "", errResolutionFailed
	}
	return id, nil
}

func (a *app) resolveAll(ctx context.Context, tokens []string) ([]domain.ItemID, error) {
	ids, ok := a.resolver.ResolveAll(ctx, tokens)
	if !ok {
		return nil, errResolutionFailed
	}
	return ids, nil
}

// currentFolder is the folder "." refers to, or the root when no folder has
// been listed yet.
func (a *app) currentFolder() domain.ItemID {
	if folder, ok := a.session.Recent().MostRecent(); ok {
		return folder.ID
	}
	return domain.RootFolderID
}

func (a *app) oauthConfig() (*oauth2.Config, error) {
	return auth.NewConfig(auth.Settings{
		ClientID:     a.cfg.Auth.ClientID,
		ClientSecret: a.cfg.Auth.ClientSecret,
		AuthURL:      a.cfg.Auth.AuthURL,
		TokenURL:     a.cfg.Auth.TokenURL,
		RedirectURL:  a.cfg.Auth.RedirectURL,
	})
}

// remote builds the Box-backed service on first use so local commands work
// without credentials.
func (a *app) remote(ctx context.Context) (*application.Service, error) {
	if a.service != nil {
		return a.service, nil
	}

	oauthCfg, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}

	// The client outlives the command context when a shell runs many lines.
	httpClient, err := auth.NewHTTPClient(context.WithoutCancel(ctx), oauthCfg, a.tokens, a.cfg.API.Timeout, a.logger.Named("oauth"))
	if err != nil {
		return nil, err
	}

	client := box.NewClient(box.Options{
		BaseURL:    a.cfg.API.BaseURL,
		HTTPClient: httpClient,
		Logger:     a.logger.Named("box"),
	})

	a.service = application.NewService(client, a.session, a.logger.Named("service"))
	return a.service, nil
}

func annotationFor(cmd *cobra.Command) string {
	for c := cmd; c != nil; c = c.Parent() {
		if needs, ok := c.Annotations[annotationNeeds]; ok {
			return needs
		}
	}
	return ""
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stderrIsTerminal reports whether progress output can be drawn on w.
func stderrIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
