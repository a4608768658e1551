package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/core/backend"
)

type staticTokenSource struct {
	token string
	err   error
}

func (s staticTokenSource) Token(context.Context) (string, error) {
	return s.token, s.err
}

func TestAuthClient_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client, err := backend.NewAuthClient(srv.URL, staticTokenSource{token: "ambient-token"})
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), http.MethodGet, "/api/me", nil)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, "Bearer ambient-token", gotAuth)
}

func TestAuthClient_UnauthorizedWithoutToken(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(srv.Close)

	source := staticTokenSource{err: errors.New("session unrecoverable")}
	client, err := backend.NewAuthClient(srv.URL, source)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), http.MethodGet, "/api/me", nil)
	require.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Zero(t, calls.Load(), "downstream must not be called without a token")
}

func TestAuthClient_ExplicitTokenOverridesAmbient(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client, err := backend.NewAuthClient(srv.URL, staticTokenSource{token: "ambient-token"})
	require.NoError(t, err)

	resp, err := client.DoWithToken(context.Background(), "request-scoped-token", http.MethodGet, "/api/me", nil)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, "Bearer request-scoped-token", gotAuth)
}
