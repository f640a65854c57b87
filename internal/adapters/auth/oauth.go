package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const DefaultLoginTimeout = 5 * time.Minute

var ErrNotLoggedIn = errors.New("not logged in (run `bx auth login`)")

type Settings struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string
}

// NewConfig builds the oauth2 configuration for a Box application. Box
// expects the client credentials in the form body.
func NewConfig(s Settings) (*oauth2.Config, error) {
	if s.ClientID == "" {
		return nil, errors.New("client id is required (set auth.client-id)")
	}
	if s.ClientSecret == "" {
		return nil, errors.New("client secret is required (set auth.client-secret)")
	}

	return &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RedirectURL:  s.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   s.AuthURL,
			TokenURL:  s.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}, nil
}

type LoginOptions struct {
	Out         io.Writer
	OpenBrowser func(string) error
	Timeout     time.Duration
}

// Login runs the authorization-code flow against a loopback callback server
// and stores the resulting token.
func Login(ctx context.Context, cfg *oauth2.Config, store ports.TokenStore, opts LoginOptions) (*oauth2.Token, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultLoginTimeout
	}

	state, err := NewState()
	if err != nil {
		return nil, fmt.Errorf("generate oauth state: %w", err)
	}

	server, err := StartCallbackServer(cfg.RedirectURL, state)
	if err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}

	flow := *cfg
	flow.RedirectURL = server.RedirectURI()
	authURL := flow.AuthCodeURL(state)

	_, _ = fmt.Fprintf(opts.Out, "Open this URL to authorize boxtools:\n%s\n", authURL)
	if opts.OpenBrowser != nil {
		_ = opts.OpenBrowser(authURL)
	}

	code, err := server.WaitForCode(ctx, opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("wait for oauth callback: %w", err)
	}

	token, err := flow.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code for tokens: %w", err)
	}
	if err := store.Save(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Refresh forces a refresh-token grant and stores the new token.
func Refresh(ctx context.Context, cfg *oauth2.Config, store ports.TokenStore) (*oauth2.Token, error) {
	current, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if current.RefreshToken == "" {
		return nil, ErrNotLoggedIn
	}

	expired := *current
	expired.Expiry = time.Now().Add(-time.Minute)

	token, err := cfg.TokenSource(ctx, &expired).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	if err := store.Save(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// persistingSource saves every token the wrapped source hands out that
// differs from the last one seen. Box rotates refresh tokens on each use.
type persistingSource struct {
	ctx    context.Context
	base   oauth2.TokenSource
	store  ports.TokenStore
	logger *zap.Logger

	mu   sync.Mutex
	last string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotAuthorized, retrieveErr.ErrorCode)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token.AccessToken != s.last {
		if s.last != "" {
			s.logger.Debug("access token refreshed", zap.Time("expiry", token.Expiry))
		}
		if err := s.store.Save(s.ctx, token); err != nil {
			return nil, err
		}
		s.last = token.AccessToken
	}
	return token, nil
}

// NewHTTPClient returns an HTTP client that authorizes requests with the
// stored token and writes refreshed tokens back to the store.
func NewHTTPClient(ctx context.Context, cfg *oauth2.Config, store ports.TokenStore, timeout time.Duration, logger *zap.Logger) (*http.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	token, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	source := &persistingSource{
		ctx:    ctx,
		base:   cfg.TokenSource(ctx, token),
		store:  store,
		logger: logger,
		last:   token.AccessToken,
	}

	client := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, source))
	client.Timeout = timeout
	return client, nil
}
