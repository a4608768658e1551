package token

import "errors"

var (
	// ErrMalformedToken is returned when a token cannot be parsed at all.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidSignature is returned when signature verification fails.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpiredToken is returned when a token is past its expiration time.
	ErrExpiredToken = errors.New("token has expired")
	// ErrClaimMismatch is returned when issuer or audience validation fails.
	ErrClaimMismatch = errors.New("token claim mismatch")
	// ErrMissingSecret is returned when a verifier is created without a secret.
	ErrMissingSecret = errors.New("signing secret is required")
	// ErrSecretTooShort is returned when the secret is too short for HMAC-SHA256.
	ErrSecretTooShort = errors.New("signing secret too short")
)
