package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"daybook/core/gate"
)

// NewRouter assembles the HTTP routes and middleware stack. The gate runs
// on the session-aware API routes only. The auth endpoints stay outside it:
// they manage the session cookies themselves, and the backend rotates the
// refresh token on every issuance, so the gate's refresh fallback would
// consume the token before the handler could read it.
func NewRouter(g *gate.Gate, auth *Auth, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/token/access", auth.TokenAccess)
		r.Post("/auth/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(g.Middleware)
			r.Get("/me", Me)
		})
	})

	return r
}

// Health reports liveness. Exempt from the session gate.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// meResponse describes the authenticated caller.
type meResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role,omitempty"`
	ClientID string `json:"client_id,omitempty"`
}

// Me returns the current user from the gate context. Routes decide for
// themselves what an unauthenticated session means; for this one it is 401.
func Me(w http.ResponseWriter, r *http.Request) {
	user, ok := gate.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	clientID, _ := gate.ClientIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, meResponse{
		ID:       user.ID,
		Role:     user.Role,
		ClientID: clientID,
	})
}
