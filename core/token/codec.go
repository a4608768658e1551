package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum secret length for HMAC-SHA256.
const minSecretLength = 32

// Decode parses the token payload without verifying the signature.
// Use it only for expiry estimation on the owning side of the session;
// authorization decisions must go through Verifier.Verify.
func Decode(tokenString string) (Claims, error) {
	var claims wireClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}
	return claims.toClaims(), nil
}

// Verifier performs full cryptographic verification of access tokens.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// VerifierOption configures optional claim checks.
type VerifierOption func(*verifierConfig)

type verifierConfig struct {
	issuer   string
	audience string
}

// WithIssuer requires the iss claim to match.
func WithIssuer(issuer string) VerifierOption {
	return func(c *verifierConfig) {
		c.issuer = issuer
	}
}

// WithAudience requires the aud claim to contain the given audience.
func WithAudience(audience string) VerifierOption {
	return func(c *verifierConfig) {
		c.audience = audience
	}
}

// NewVerifier creates a verifier for HS256-signed tokens.
func NewVerifier(secret string, opts ...VerifierOption) (*Verifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if len(secret) < minSecretLength {
		return nil, ErrSecretTooShort
	}

	var cfg verifierConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.issuer))
	}
	if cfg.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.audience))
	}

	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(parserOpts...),
	}, nil
}

// Verify checks the token signature and temporal claims and returns the
// decoded claims. Errors are mapped to the package sentinels so callers can
// branch on the failure kind without importing the JWT library.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	var claims wireClaims
	tkn, err := v.parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapJWTError(err)
	}
	if !tkn.Valid {
		return Claims{}, ErrInvalidSignature
	}
	return claims.toClaims(), nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenNotValidYet):
		return errors.Join(ErrClaimMismatch, err)
	default:
		return errors.Join(ErrMalformedToken, err)
	}
}
