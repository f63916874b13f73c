// Package gateway is the typed client for the loan-platform backend. It owns
// everything about talking upstream: bearer auth, the response envelope,
// error normalization into the domain taxonomy, and the cross-cutting
// unauthorized side effect (session teardown signalled through a hook, never
// surfaced as an inline error).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/simp-lee/loanadmin/internal/domain"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token for a request, typically from the
// session bound to the request context. The second return is false when no
// session is present; such requests go out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// UnauthorizedHook is invoked once per unauthorized upstream response, before
// the call returns domain.ErrUnauthorized. Implementations must be idempotent;
// concurrent in-flight calls may observe the same expired credential.
type UnauthorizedHook func(ctx context.Context)

// Client is the remote data gateway. Entity operations hang off the service
// fields; all of them funnel through do.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHook
	logger         *slog.Logger

	Auth      *AuthService
	Dashboard *DashboardService
	Dealers   *DealerService
	Users     *UserService
	Banks     *BankService
	Loans     *LoanService
	Content   *ContentService
	Profile   *ProfileService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHook sets the session-teardown hook.
func WithUnauthorizedHook(h UnauthorizedHook) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

// WithLogger sets the logger used for request failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a gateway client for the backend at baseURL (including the API
// path prefix, e.g. "https://api.example.com/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c: c}
	c.Dashboard = &DashboardService{c: c}
	c.Dealers = &DealerService{c: c}
	c.Users = &UserService{c: c}
	c.Banks = &BankService{c: c}
	c.Loans = &LoanService{c: c}
	c.Content = &ContentService{c: c}
	c.Profile = &ProfileService{c: c}
	return c
}

// envelope is the backend's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one backend call and decodes data into out (when non-nil).
//
// Failures are normalized: transport errors become CodeUnavailable, 5xx
// CodeUpstream, 404 CodeNotFound, other 4xx CodeValidation. An unauthorized
// response triggers the teardown hook and returns domain.ErrUnauthorized.
// Context cancellation passes through untouched so superseded list fetches
// are recognizable upstream.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to encode request", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.logger.WarnContext(ctx, "backend unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return domain.NewAppError(domain.CodeUnavailable, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return domain.ErrUnauthorized
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return domain.NewAppError(domain.CodeUnavailable, "request failed", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return domain.NewAppError(statusCode(resp.StatusCode), "request failed",
				fmt.Errorf("decode response: %w", err))
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := "request failed"
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		c.logger.WarnContext(ctx, "backend error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return domain.NewAppError(statusCode(resp.StatusCode), msg, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to decode response", err)
		}
	}
	return nil
}

// statusCode maps an HTTP status to a domain error code.
func statusCode(status int) int {
	switch {
	case status == http.StatusNotFound:
		return domain.CodeNotFound
	case status == http.StatusConflict:
		return domain.CodeAlreadyExists
	case status >= 500:
		return domain.CodeUpstream
	case status >= 400:
		return domain.CodeValidation
	default:
		// 2xx with success=false carries a backend-reported failure.
		return domain.CodeUpstream
	}
}

// listQuery converts a domain.ListQuery to wire parameters, omitting empty
// filter fields.
func listQuery(q domain.ListQuery) url.Values {
	q = q.Normalize()
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	return v
}
