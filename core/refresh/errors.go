package refresh

import "errors"

var (
	// ErrRefreshTokenMissing is returned when no refresh token is available.
	// Terminal: the caller must send the user through login.
	ErrRefreshTokenMissing = errors.New("no refresh token available")
	// ErrRefreshFailed is returned when a refresh attempt fails for any
	// reason. The session is cleared before this is returned.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrMissingState is returned when a coordinator is created without state.
	ErrMissingState = errors.New("session state is required")
	// ErrMissingIssuer is returned when a coordinator is created without an issuer.
	ErrMissingIssuer = errors.New("token issuer is required")
	// ErrMissingTokenSource is returned when a coordinator is created without
	// a refresh token source.
	ErrMissingTokenSource = errors.New("refresh token source is required")
)
