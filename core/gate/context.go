package gate

import "context"

// User is the authenticated principal derived from a verified access token.
type User struct {
	ID   string
	Role string
}

// RequestContext carries the per-request session outcome. It is constructed
// by the gate, read by downstream handlers, and discarded with the request.
type RequestContext struct {
	// ClientID is the stable anonymous identifier, present on every request.
	ClientID string
	// AccessToken is the verified bearer token, empty when unauthenticated.
	AccessToken string
	// User is nil when the request is unauthenticated.
	User *User
}

// IsAuthenticated reports whether the request carries a verified user.
func (rc RequestContext) IsAuthenticated() bool {
	return rc.User != nil
}

type ctxKey struct{}

// WithRequestContext returns a context carrying the request context.
func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext retrieves the request context set by the gate middleware.
func FromContext(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(RequestContext)
	return rc, ok
}

// UserFromContext retrieves the authenticated user, if any.
func UserFromContext(ctx context.Context) (User, bool) {
	rc, ok := FromContext(ctx)
	if !ok || rc.User == nil {
		return User{}, false
	}
	return *rc.User, true
}

// AccessTokenFromContext retrieves the verified access token, if any.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	rc, ok := FromContext(ctx)
	if !ok || rc.AccessToken == "" {
		return "", false
	}
	return rc.AccessToken, true
}

// ClientIDFromContext retrieves the anonymous client identifier.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	rc, ok := FromContext(ctx)
	if !ok || rc.ClientID == "" {
		return "", false
	}
	return rc.ClientID, true
}
