package backend

import "errors"

var (
	// ErrMissingEndpoint is returned when a client is created without a URL.
	ErrMissingEndpoint = errors.New("backend endpoint is required")
	// ErrRequestFailed is returned when the HTTP exchange itself fails
	// (network error, timeout, non-2xx status).
	ErrRequestFailed = errors.New("backend request failed")
	// ErrGraphQL is returned when the backend answers with GraphQL errors.
	ErrGraphQL = errors.New("backend returned errors")
	// ErrMalformedResponse is returned when a response parses but lacks
	// required fields. Treated by callers exactly like a request failure.
	ErrMalformedResponse = errors.New("malformed backend response")
	// ErrUnauthorized is returned by AuthClient when no valid access token
	// can be obtained for a call.
	ErrUnauthorized = errors.New("unauthorized")
)
