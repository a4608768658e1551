package session

import (
	"time"

	"daybook/core/token"
)

// DefaultRefreshThreshold is how long before hard expiry a session is
// considered due for proactive refresh. Refreshing ahead of expiry avoids
// business calls racing token expiration mid-flight.
const DefaultRefreshThreshold = 5 * time.Minute

// Session is a snapshot of the current session. The zero value is the
// logged-out state.
type Session struct {
	// AccessToken is the bearer credential, empty when logged out.
	AccessToken string
	// Claims were decoded from AccessToken; the two are always set and
	// cleared together.
	Claims token.Claims
}

// New builds a session from an access token and its decoded claims.
func New(accessToken string, claims token.Claims) Session {
	return Session{AccessToken: accessToken, Claims: claims}
}

// IsZero reports whether the session is empty (logged out).
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

// IsValid reports whether the session holds a token that has not expired.
// Tokens without an expiry claim are never valid.
func (s Session) IsValid(now time.Time) bool {
	return s.AccessToken != "" && s.Claims.HasExpiry() && s.Claims.ExpiresAt.After(now)
}

// NeedsRefresh reports whether the session should be refreshed: either it is
// already invalid, or it expires within threshold. The boundary is inclusive,
// a token with exactly threshold remaining is due.
func (s Session) NeedsRefresh(now time.Time, threshold time.Duration) bool {
	if !s.IsValid(now) {
		return true
	}
	return s.Claims.ExpiresAt.Sub(now) <= threshold
}
