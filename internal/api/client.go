// Package api implements the HTTP client for the ArtDistrictUSA marketplace
// API. Every method takes a context and is bounded by the client timeout;
// failures surface as *Error with the server message when one is present.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"artdistrict/internal/logging"
)

// TokenSource supplies the bearer token for authenticated calls.
// An empty string means the request goes out unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// RefreshTokenSource is a TokenSource that can also exchange its refresh
// token for a new pair. When the configured source implements it, the
// client retries a 401 once after refreshing. *session.Manager satisfies it.
type RefreshTokenSource interface {
	TokenSource
	RefreshToken() string
	UpdateTokens(Tokens) error
}

// StaticToken is a fixed-token TokenSource, mainly for tests.
type StaticToken string

// AccessToken implements TokenSource.
func (s StaticToken) AccessToken() string { return string(s) }

// Client talks to the marketplace API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 30s per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTokenSource attaches a bearer token source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a marketplace API client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// Error is a failed API call. Message carries the server-provided message
// when the response body had one, else a generic fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

// errorBody is the conventional error envelope the backend returns.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newError extracts a server message from the response body.
func newError(status int, body []byte, fallback string) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return &Error{Status: status, Message: eb.Message}
		}
		if eb.Error != "" {
			return &Error{Status: status, Message: eb.Error}
		}
	}
	return &Error{Status: status, Message: fallback}
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (skipped when out is nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, "request failed")
}

// do sends a prepared request. A 401 is retried once with a refreshed
// token pair when the token source supports it; the refresh endpoint
// itself is exempt so a rejected refresh cannot recurse.
func (c *Client) do(req *http.Request, out interface{}, fallback string) error {
	err := c.send(req, out, fallback)
	apiErr, ok := err.(*Error)
	if !ok || apiErr.Status != http.StatusUnauthorized {
		return err
	}
	if strings.HasSuffix(req.URL.Path, "/auth/refresh") {
		return err
	}
	retry, ok := c.refreshedRetry(req)
	if !ok {
		return err
	}
	return c.send(retry, out, fallback)
}

// refreshedRetry exchanges the refresh token and rebuilds the request for a
// second attempt. Returns false when the source holds no refresh token, the
// exchange fails, or the body cannot be replayed.
func (c *Client) refreshedRetry(orig *http.Request) (*http.Request, bool) {
	rts, ok := c.tokens.(RefreshTokenSource)
	if !ok || rts.RefreshToken() == "" {
		return nil, false
	}
	tokens, err := c.Refresh(orig.Context(), rts.RefreshToken())
	if err != nil {
		logging.APIError("token refresh failed: %v", err)
		return nil, false
	}
	if err := rts.UpdateTokens(*tokens); err != nil {
		logging.APIError("failed to persist refreshed tokens: %v", err)
		return nil, false
	}
	var body io.Reader
	if orig.GetBody != nil {
		b, err := orig.GetBody()
		if err != nil {
			return nil, false
		}
		body = b
	}
	req, err := http.NewRequestWithContext(orig.Context(), orig.Method, orig.URL.String(), body)
	if err != nil {
		return nil, false
	}
	req.Header = orig.Header.Clone()
	return req, true
}

// send performs one attempt, applying auth and correlation headers.
func (c *Client) send(req *http.Request, out interface{}, fallback string) error {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.AccessToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.APIError("req=%s %s %s transport error: %v", reqID, req.Method, req.URL.Path, err)
		return &Error{Message: fallback}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.APIError("req=%s %s %s read error: %v", reqID, req.Method, req.URL.Path, err)
		return &Error{Status: resp.StatusCode, Message: fallback}
	}

	logging.API("req=%s %s %s -> %d in %v", reqID, req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, respBody, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			// Malformed success body is handled like any other failure.
			logging.APIError("req=%s %s %s decode error: %v", reqID, req.Method, req.URL.Path, err)
			return &Error{Status: resp.StatusCode, Message: fallback}
		}
	}
	return nil
}
