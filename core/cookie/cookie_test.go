package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/core/cookie"
)

func TestManager_SetAppliesDefaults(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()

	require.NoError(t, m.Set(w, "accessToken", "token-value"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "accessToken", c.Name)
	assert.Equal(t, "token-value", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
}

func TestManager_SetWithOverrides(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))
	w := httptest.NewRecorder()

	require.NoError(t, m.Set(w, "client_id", "abc",
		cookie.WithMaxAge(60*60*24*365),
	))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 60*60*24*365, cookies[0].MaxAge)
	assert.True(t, cookies[0].Secure)
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := m.Get(r, "absent")
	require.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "refreshToken", "opaque-value"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	got, err := m.Get(r, "refreshToken")
	require.NoError(t, err)
	assert.Equal(t, "opaque-value", got)
}

func TestManager_DeleteExpiresImmediately(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()
	m.Delete(w, "accessToken")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestManager_RejectsOversizedCookie(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()

	err := m.Set(w, "big", strings.Repeat("x", cookie.MaxCookieSize))
	require.ErrorIs(t, err, cookie.ErrCookieTooLarge)
	assert.Empty(t, w.Result().Cookies())
}
