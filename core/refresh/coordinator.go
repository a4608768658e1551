package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"daybook/core/backend"
	"daybook/core/session"
	"daybook/core/token"
)

// refreshKey is the singleflight key: one session owner, one slot.
const refreshKey = "refresh"

// TokenIssuer exchanges a refresh token for a new access token.
// Implemented by backend.Client.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, refreshToken string) (backend.TokenGrant, error)
}

// TokenStore supplies the long-lived refresh token. The token never lives in
// session state; where it actually resides (an HTTP-only cookie, a keychain)
// is the caller's concern.
type TokenStore func(ctx context.Context) (string, error)

// Coordinator serializes refresh attempts against a session state.
type Coordinator struct {
	state     *session.State
	issuer    TokenIssuer
	tokens    TokenStore
	threshold time.Duration
	group     singleflight.Group
	now       func() time.Time
}

// CoordinatorOption configures the coordinator.
type CoordinatorOption func(*Coordinator)

// WithThreshold sets how long before expiry a session is refreshed
// proactively. Default is session.DefaultRefreshThreshold.
func WithThreshold(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		if d >= 0 {
			c.threshold = d
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCoordinator creates a refresh coordinator.
func NewCoordinator(state *session.State, issuer TokenIssuer, tokens TokenStore, opts ...CoordinatorOption) (*Coordinator, error) {
	if state == nil {
		return nil, ErrMissingState
	}
	if issuer == nil {
		return nil, ErrMissingIssuer
	}
	if tokens == nil {
		return nil, ErrMissingTokenSource
	}

	c := &Coordinator{
		state:     state,
		issuer:    issuer,
		tokens:    tokens,
		threshold: session.DefaultRefreshThreshold,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// EnsureValid makes sure the session holds a usable access token, refreshing
// it when absent, expired, or within the proactive threshold. Concurrent
// callers share a single refresh attempt and receive its one outcome. On
// failure the session is cleared and the error is terminal for this attempt.
func (c *Coordinator) EnsureValid(ctx context.Context) error {
	if c.fresh() {
		return nil
	}

	_, err, _ := c.group.Do(refreshKey, func() (any, error) {
		return nil, c.refresh(ctx)
	})
	return err
}

// Token ensures validity and returns the current access token.
func (c *Coordinator) Token(ctx context.Context) (string, error) {
	if err := c.EnsureValid(ctx); err != nil {
		return "", err
	}

	sess := c.state.Get()
	if sess.IsZero() {
		// A logout can land between the refresh and this read.
		return "", fmt.Errorf("%w: session cleared", ErrRefreshFailed)
	}
	return sess.AccessToken, nil
}

func (c *Coordinator) fresh() bool {
	now := c.now()
	sess := c.state.Get()
	return sess.IsValid(now) && !sess.NeedsRefresh(now, c.threshold)
}

func (c *Coordinator) refresh(ctx context.Context) error {
	// A waiter queued behind a completed refresh re-enters here with a fresh
	// session already in place.
	if c.fresh() {
		return nil
	}

	refreshToken, err := c.tokens(ctx)
	if err != nil || refreshToken == "" {
		// Short-circuit: no network call without a refresh token.
		c.state.Clear()
		if err != nil {
			return errors.Join(ErrRefreshTokenMissing, err)
		}
		return ErrRefreshTokenMissing
	}

	// The refresh outcome is shared state other callers depend on, so a
	// caller abandoning its request must not cancel the attempt mid-flight.
	grant, err := c.issuer.IssueAccessToken(context.WithoutCancel(ctx), refreshToken)
	if err != nil {
		c.state.Clear()
		return errors.Join(ErrRefreshFailed, err)
	}

	claims, err := token.Decode(grant.AccessToken)
	if err != nil {
		c.state.Clear()
		return errors.Join(ErrRefreshFailed, err)
	}
	if !claims.HasExpiry() {
		c.state.Clear()
		return fmt.Errorf("%w: grant token has no expiry", ErrRefreshFailed)
	}

	c.state.Set(session.New(grant.AccessToken, claims))
	return nil
}
