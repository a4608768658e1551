// Package backend is the typed client for the external GraphQL backend that
// owns users, tokens, and all business data.
//
// Client posts GraphQL documents and decodes the {data, errors} envelope into
// caller-supplied structs; responses missing required fields are a distinct
// ErrMalformedResponse rather than a silent zero value. IssueAccessToken is
// the one operation the session core depends on: exchanging a refresh token
// for a new access token (and, when the backend rotates, a new refresh token).
//
// AuthClient wraps outbound business calls, obtaining a valid access token
// from a TokenSource before each request and refusing to call downstream when
// none is obtainable.
package backend
