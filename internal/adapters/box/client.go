// Package box implements the storage client port against the Box content
// API (https://developer.box.com/reference/).
package box

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/bnema/boxtools-cli/internal/retry"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL     = "https://api.box.com/2.0"
	itemFields         = "id,type,name,parent"
	pathFields         = "id,type,name,parent,path_collection"
	listPageSize       = 1000
	maxResponseBytes   = 8 << 20
	defaultSearchLimit = 100
)

var ErrUnsupportedOperation = errors.New("operation not supported for this item type")

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
	Retry      retry.Config
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	retry   retry.Config
}

var _ ports.StorageClient = (*Client)(nil)

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Retry.MaxAttempts == 0 && opts.Retry.InitialWait == 0 {
		opts.Retry = retry.DefaultConfig()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    opts.HTTPClient,
		logger:  opts.Logger,
		retry:   opts.Retry,
	}
}

// APIError is the error body Box returns with non-2xx responses.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("box api: %s (%d %s)", msg, e.Status, e.Code)
	}
	return fmt.Sprintf("box api: %s (%d)", msg, e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrItemNotFound
	case http.StatusUnauthorized:
		return domain.ErrNotAuthorized
	default:
		return nil
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	var payload []byte
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", req.method, req.path, err)
		}
		payload = encoded
	}

	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	return retry.Do(ctx, c.retry, func(attempt int) error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
		if err != nil {
			return fmt.Errorf("create %s %s request: %w", req.method, req.path, err)
		}
		httpReq.Header.Set("Accept", "application/json")
		if payload != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.http.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.Retryable(fmt.Errorf("%s %s: %w", req.method, req.path, err))
		}
		defer func() { _ = resp.Body.Close() }()

		c.logger.Debug("box api request",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Int("status", resp.StatusCode),
			zap.Int("attempt", attempt),
			zap.Duration("duration", time.Since(start)),
		)

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			if out == nil || resp.StatusCode == http.StatusNoContent {
				return nil
			}
			if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
				return fmt.Errorf("decode %s %s response: %w", req.method, req.path, err)
			}
			return nil
		}

		apiErr := decodeAPIError(resp)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableAfter(apiErr, retryAfter(resp.Header.Get("Retry-After")))
		}
		return apiErr
	})
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, apiErr)
	apiErr.Status = resp.StatusCode
	return apiErr
}

func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
