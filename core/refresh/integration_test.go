package refresh_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/core/backend"
	"daybook/core/refresh"
	"daybook/core/session"
)

// Exercises the full client-side stack against live HTTP: a GraphQL stub
// issuing tokens, the real backend client, the coordinator in front of it,
// and the authenticated client on top. Simultaneous API calls against an
// expired session must trigger exactly one token issuance.
func TestEndToEnd_ConcurrentRequestsShareOneRefresh(t *testing.T) {
	t.Parallel()

	accessToken := mintToken(t, "user-42", time.Now().Add(time.Hour))

	var issueCalls atomic.Int32
	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		issueCalls.Add(1)
		// Hold the refresh long enough for every caller to queue behind it.
		time.Sleep(30 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"issueAccessToken": map[string]any{
					"accessToken":      accessToken,
					"expiresAt":        time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
					"newRefreshToken":  "rotated-refresh-token",
					"refreshExpiresAt": time.Now().Add(14 * 24 * time.Hour).UTC().Format(time.RFC3339),
				},
			},
		})
	}))
	defer graphql.Close()

	var apiCalls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		assert.Equal(t, "Bearer "+accessToken, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	issuer, err := backend.NewClient(graphql.URL)
	require.NoError(t, err)

	state := session.NewState()
	coord, err := refresh.NewCoordinator(state, issuer, staticTokenStore("stored-refresh-token"))
	require.NoError(t, err)

	client, err := backend.NewAuthClient(api.URL, coord)
	require.NoError(t, err)

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Do(context.Background(), http.MethodGet, "/daybooks", nil)
			if err == nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}
			errs[i] = err
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, int32(1), issueCalls.Load(), "all callers must share one token issuance")
	assert.Equal(t, int32(callers), apiCalls.Load())

	sess := state.Get()
	require.False(t, sess.IsZero())
	assert.Equal(t, accessToken, sess.AccessToken)
}
