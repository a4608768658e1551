// Package gate is the per-request session interceptor for the server side.
//
// For every inbound request the gate, in order: guarantees a stable anonymous
// client_id cookie, verifies the access-token cookie, and falls back to
// issuing a fresh access token from the refresh-token cookie when needed. The
// outcome lands in a request-scoped Context value; the request always
// proceeds downstream. Authentication here is advisory, individual handlers
// inspect the request context and decide per route whether an anonymous
// caller is acceptable.
//
// The gate holds no state between requests. Cookies are the only shared
// resource, and the backend's refresh-token rotation is what prevents two
// concurrent processes from reusing the same refresh token.
package gate
