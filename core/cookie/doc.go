// Package cookie is a small manager for HTTP cookie operations with secure
// defaults (HttpOnly, SameSite=Lax) and per-call overrides via functional
// options.
//
// Cookie values in this app are backend-issued credentials (JWT access
// tokens, opaque rotated refresh tokens) that the external auth server must
// read back verbatim, so the manager stores them as-is; integrity comes from
// the token signatures themselves.
package cookie
