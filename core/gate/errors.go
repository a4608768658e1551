package gate

import "errors"

var (
	// ErrMissingCookieManager is returned when a gate is created without a cookie manager.
	ErrMissingCookieManager = errors.New("cookie manager is required")
	// ErrMissingVerifier is returned when a gate is created without a token verifier.
	ErrMissingVerifier = errors.New("token verifier is required")
	// ErrMissingIssuer is returned when a gate is created without a token issuer.
	ErrMissingIssuer = errors.New("token issuer is required")
)
