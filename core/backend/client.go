package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every call to the backend. A refresh that hangs is
// treated the same as one that fails.
const DefaultTimeout = 10 * time.Second

// Client posts GraphQL documents to the backend and decodes typed responses.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

// NewClient creates a backend client for the given GraphQL endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// Execute posts the query and decodes the data payload into out.
// GraphQL-level errors are joined into a single ErrGraphQL; transport and
// decode failures map to ErrRequestFailed and ErrMalformedResponse.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	return c.execute(ctx, query, variables, "", out)
}

// ExecuteWithToken is Execute with a bearer token attached.
func (c *Client) ExecuteWithToken(ctx context.Context, accessToken, query string, variables map[string]any, out any) error {
	return c.execute(ctx, query, variables, accessToken, out)
}

func (c *Client) execute(ctx context.Context, query string, variables map[string]any, accessToken string, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "backend request failed", "endpoint", c.endpoint, "error", err)
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	var envelope gqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// A non-JSON body on a failing status is a transport-level problem
		// (a proxy error page, not a backend envelope).
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
		}
		c.logger.ErrorContext(ctx, "backend response is not valid JSON", "status", resp.StatusCode)
		return errors.Join(ErrMalformedResponse, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return fmt.Errorf("%w: %s", ErrGraphQL, strings.Join(messages, ", "))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	if out != nil {
		if len(envelope.Data) == 0 {
			return fmt.Errorf("%w: missing data", ErrMalformedResponse)
		}
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errors.Join(ErrMalformedResponse, err)
		}
	}

	return nil
}
