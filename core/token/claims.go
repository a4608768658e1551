package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of an access token.
type Claims struct {
	// Subject identifies the user the token was issued for.
	Subject string
	// Role is an optional authorization hint carried by the backend.
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an exp claim.
// Tokens without expiry are treated as already expired by callers.
func (c Claims) HasExpiry() bool {
	return !c.ExpiresAt.IsZero()
}

// wireClaims is the JSON shape parsed from the token payload.
type wireClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

func (w wireClaims) toClaims() Claims {
	c := Claims{
		Subject: w.Subject,
		Role:    w.Role,
	}
	if w.IssuedAt != nil {
		c.IssuedAt = w.IssuedAt.Time
	}
	if w.ExpiresAt != nil {
		c.ExpiresAt = w.ExpiresAt.Time
	}
	return c
}
