package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies a currently valid access token, refreshing it first
// when necessary. Implemented by refresh.Coordinator.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthClient performs authenticated HTTP calls against the backend API.
// Every call obtains a token from the TokenSource first; when no token is
// obtainable the downstream call is never made.
type AuthClient struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// AuthClientOption configures the AuthClient.
type AuthClientOption func(*AuthClient)

// WithAuthHTTPClient replaces the underlying HTTP client.
func WithAuthHTTPClient(hc *http.Client) AuthClientOption {
	return func(c *AuthClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewAuthClient creates an authenticated client for the backend REST surface.
func NewAuthClient(baseURL string, tokens TokenSource, opts ...AuthClientOption) (*AuthClient, error) {
	if baseURL == "" {
		return nil, ErrMissingEndpoint
	}

	c := &AuthClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do performs an authenticated request using the ambient session token.
// Returns ErrUnauthorized without calling downstream when the token source
// cannot produce a valid token.
func (c *AuthClient) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, errors.Join(ErrUnauthorized, err)
	}
	return c.DoWithToken(ctx, token, method, path, body)
}

// DoWithToken performs a request with an explicitly supplied token. The
// explicit token always wins over the ambient session token; this supports
// server-side calls where the token comes from a just-verified request.
func (c *AuthClient) DoWithToken(ctx context.Context, token, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return resp, nil
}

// Config provides environment-based configuration for backend clients.
type Config struct {
	GraphQLEndpoint string        `env:"AUTH_SERVER_GRAPHQL,required"`
	Timeout         time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}
