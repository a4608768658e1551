package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"daybook/core/gate"
	"daybook/core/logger"
)

// tokenResponse is the body returned by the access-token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// Auth serves the session endpoints: explicit token refresh and logout.
type Auth struct {
	gate   *gate.Gate
	issuer gate.TokenIssuer
	logger *slog.Logger
}

// AuthOption configures the auth handler.
type AuthOption func(*Auth)

// WithLogger sets the logger. Default discards output.
func WithLogger(log *slog.Logger) AuthOption {
	return func(a *Auth) {
		if log != nil {
			a.logger = log
		}
	}
}

// NewAuth creates the auth handler.
func NewAuth(g *gate.Gate, issuer gate.TokenIssuer, opts ...AuthOption) (*Auth, error) {
	if g == nil {
		return nil, ErrMissingGate
	}
	if issuer == nil {
		return nil, ErrMissingIssuer
	}

	a := &Auth{
		gate:   g,
		issuer: issuer,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// TokenAccess exchanges the refresh-token cookie for a fresh access token.
// On success the new token is returned in the Authorization header and the
// JSON body, and both session cookies are updated in the same response. On
// failure both cookies are deleted so the browser starts clean.
func (a *Auth) TokenAccess(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := a.gate.RefreshToken(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "no refresh token")
		return
	}

	grant, err := a.issuer.IssueAccessToken(r.Context(), refreshToken)
	if err != nil {
		a.logger.WarnContext(r.Context(), "access token issue failed", logger.Error(err))
		a.gate.ClearSession(w)
		respondError(w, http.StatusUnauthorized, "refresh token rejected")
		return
	}

	if err := a.gate.ApplyGrant(w, grant); err != nil {
		a.logger.ErrorContext(r.Context(), "failed to set session cookies", logger.Error(err))
	}

	expiresAt := grant.ExpiresAt.UTC().Format(time.RFC3339)
	w.Header().Set("Authorization", "Bearer "+grant.AccessToken)
	w.Header().Set("X-Expires-At", expiresAt)
	respondJSON(w, http.StatusOK, tokenResponse{
		AccessToken: grant.AccessToken,
		ExpiresAt:   expiresAt,
	})
}

// Logout deletes both session cookies. Always succeeds, even when no
// session exists.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.gate.ClearSession(w)
	w.WriteHeader(http.StatusNoContent)
}
