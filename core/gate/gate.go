package gate

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"daybook/core/backend"
	"daybook/core/cookie"
	"daybook/core/token"
)

// clientIDMaxAge is one year in seconds.
const clientIDMaxAge = 60 * 60 * 24 * 365

// TokenIssuer exchanges a refresh token for a new access token.
// Implemented by backend.Client.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, refreshToken string) (backend.TokenGrant, error)
}

// Config provides environment-based configuration for cookie names.
type Config struct {
	ClientIDCookie string `env:"CLIENT_ID_COOKIE" envDefault:"client_id"`
	AccessCookie   string `env:"ACCESS_TOKEN_COOKIE_NAME" envDefault:"accessToken"`
	RefreshCookie  string `env:"REFRESH_TOKEN_COOKIE_NAME" envDefault:"refreshToken"`
}

// Gate attaches session context to every inbound request.
type Gate struct {
	cfg      Config
	cookies  *cookie.Manager
	verifier *token.Verifier
	issuer   TokenIssuer
	logger   *slog.Logger
	skip     func(r *http.Request) bool
}

// GateOption configures the gate.
type GateOption func(*Gate)

// WithLogger sets the logger. Default discards output.
func WithLogger(log *slog.Logger) GateOption {
	return func(g *Gate) {
		if log != nil {
			g.logger = log
		}
	}
}

// WithSkip skips gate processing for matching requests (static assets,
// health checks).
func WithSkip(skip func(r *http.Request) bool) GateOption {
	return func(g *Gate) {
		g.skip = skip
	}
}

// New creates a session gate.
func New(cfg Config, cookies *cookie.Manager, verifier *token.Verifier, issuer TokenIssuer, opts ...GateOption) (*Gate, error) {
	if cookies == nil {
		return nil, ErrMissingCookieManager
	}
	if verifier == nil {
		return nil, ErrMissingVerifier
	}
	if issuer == nil {
		return nil, ErrMissingIssuer
	}

	if cfg.ClientIDCookie == "" {
		cfg.ClientIDCookie = "client_id"
	}
	if cfg.AccessCookie == "" {
		cfg.AccessCookie = "accessToken"
	}
	if cfg.RefreshCookie == "" {
		cfg.RefreshCookie = "refreshToken"
	}

	g := &Gate{
		cfg:      cfg,
		cookies:  cookies,
		verifier: verifier,
		issuer:   issuer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Middleware runs the session protocol for each request and stores the
// outcome in the request context. It never fails the request: a broken or
// expired session degrades to an unauthenticated context and the downstream
// handler decides what that means for its route.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.skip != nil && g.skip(r) {
			next.ServeHTTP(w, r)
			return
		}

		rc := RequestContext{
			ClientID: g.ensureClientID(w, r),
		}

		accessToken, claims, ok := g.verifyAccessCookie(w, r)
		if !ok {
			accessToken, claims, ok = g.refreshFromCookie(w, r)
		}
		if ok {
			rc.AccessToken = accessToken
			rc.User = &User{ID: claims.Subject, Role: claims.Role}
		}

		next.ServeHTTP(w, r.WithContext(WithRequestContext(r.Context(), rc)))
	})
}

// ensureClientID returns the stable anonymous id, minting and setting it on
// first contact. The cookie exists independently of login state.
func (g *Gate) ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if id, err := g.cookies.Get(r, g.cfg.ClientIDCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	if err := g.cookies.Set(w, g.cfg.ClientIDCookie, id,
		cookie.WithMaxAge(clientIDMaxAge),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	); err != nil {
		g.logger.ErrorContext(r.Context(), "failed to set client id cookie", "error", err)
	}
	return id
}

// verifyAccessCookie validates the access-token cookie. An expired or
// tampered token is deleted and reported as absent, never as a request
// failure.
func (g *Gate) verifyAccessCookie(w http.ResponseWriter, r *http.Request) (string, token.Claims, bool) {
	accessToken, err := g.cookies.Get(r, g.cfg.AccessCookie)
	if err != nil || accessToken == "" {
		return "", token.Claims{}, false
	}

	claims, err := g.verifier.Verify(accessToken)
	if err != nil {
		g.logger.DebugContext(r.Context(), "access token rejected", "error", err)
		g.cookies.Delete(w, g.cfg.AccessCookie)
		return "", token.Claims{}, false
	}

	return accessToken, claims, true
}

// refreshFromCookie exchanges the refresh-token cookie for a new access
// token. On success both cookies are updated in this response; on failure
// both are deleted (full logout) and the request continues unauthenticated.
// A cookie write failure after a successful grant keeps the request
// authenticated: the claims are already verified, only the browser misses
// the new cookies, and the next request runs the refresh again.
func (g *Gate) refreshFromCookie(w http.ResponseWriter, r *http.Request) (string, token.Claims, bool) {
	refreshToken, err := g.cookies.Get(r, g.cfg.RefreshCookie)
	if err != nil || refreshToken == "" {
		return "", token.Claims{}, false
	}

	grant, err := g.issuer.IssueAccessToken(r.Context(), refreshToken)
	if err != nil {
		g.logger.WarnContext(r.Context(), "token refresh failed, logging out", "error", err)
		g.ClearSession(w)
		return "", token.Claims{}, false
	}

	// The grant token must verify before its claims enter the request
	// context; a backend handing out tokens we cannot verify is a failed
	// refresh like any other.
	claims, err := g.verifier.Verify(grant.AccessToken)
	if err != nil {
		g.logger.ErrorContext(r.Context(), "issued token failed verification", "error", err)
		g.ClearSession(w)
		return "", token.Claims{}, false
	}

	if err := g.ApplyGrant(w, grant); err != nil {
		g.logger.ErrorContext(r.Context(), "failed to set session cookies", "error", err)
	}

	return grant.AccessToken, claims, true
}

// RefreshToken reads the refresh-token cookie from the request.
func (g *Gate) RefreshToken(r *http.Request) (string, bool) {
	value, err := g.cookies.Get(r, g.cfg.RefreshCookie)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// ClearSession deletes both token cookies (full logout). Safe to call when
// the cookies are already absent.
func (g *Gate) ClearSession(w http.ResponseWriter) {
	g.cookies.Delete(w, g.cfg.AccessCookie)
	g.cookies.Delete(w, g.cfg.RefreshCookie)
}

// ApplyGrant writes the new access cookie and, when the backend rotated the
// refresh token, replaces the refresh cookie in the same response.
func (g *Gate) ApplyGrant(w http.ResponseWriter, grant backend.TokenGrant) error {
	if err := g.cookies.Set(w, g.cfg.AccessCookie, grant.AccessToken,
		cookie.WithExpires(grant.ExpiresAt),
	); err != nil {
		return err
	}

	if grant.RefreshToken != "" {
		opts := []cookie.Option{}
		if !grant.RefreshExpiresAt.IsZero() {
			opts = append(opts, cookie.WithExpires(grant.RefreshExpiresAt))
		}
		return g.cookies.Set(w, g.cfg.RefreshCookie, grant.RefreshToken, opts...)
	}

	return nil
}
