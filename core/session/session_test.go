package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daybook/core/session"
	"daybook/core/token"
)

func sessionExpiringIn(now time.Time, d time.Duration) session.Session {
	return session.New("token-value", token.Claims{
		Subject:   "user-42",
		IssuedAt:  now,
		ExpiresAt: now.Add(d),
	})
}

func TestSession_IsValid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("zero session is invalid", func(t *testing.T) {
		t.Parallel()
		assert.False(t, session.Session{}.IsValid(now))
	})

	t.Run("live token is valid", func(t *testing.T) {
		t.Parallel()
		assert.True(t, sessionExpiringIn(now, time.Hour).IsValid(now))
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		t.Parallel()
		assert.False(t, sessionExpiringIn(now, -time.Second).IsValid(now))
	})

	t.Run("token without expiry is invalid", func(t *testing.T) {
		t.Parallel()
		sess := session.New("token-value", token.Claims{Subject: "user-42"})
		assert.False(t, sess.IsValid(now))
	})
}

func TestSession_NeedsRefresh_Boundary(t *testing.T) {
	t.Parallel()

	now := time.Now()
	const threshold = 300 * time.Second

	// 301s remaining: not yet due.
	assert.False(t, sessionExpiringIn(now, 301*time.Second).NeedsRefresh(now, threshold))
	// Exactly 300s remaining: due (boundary inclusive).
	assert.True(t, sessionExpiringIn(now, 300*time.Second).NeedsRefresh(now, threshold))
	// Already invalid: due.
	assert.True(t, session.Session{}.NeedsRefresh(now, threshold))
}

func TestState_SetAndGet(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	assert.True(t, state.Get().IsZero())

	sess := sessionExpiringIn(time.Now(), time.Hour)
	state.Set(sess)
	assert.Equal(t, sess, state.Get())
}

func TestState_ClearIsIdempotent(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	state.Set(sessionExpiringIn(time.Now(), time.Hour))

	var notifications int
	state.Subscribe(func(session.Session) { notifications++ })

	state.Clear()
	state.Clear()

	assert.True(t, state.Get().IsZero())
	assert.Equal(t, 1, notifications, "second clear must not notify again")
}

func TestState_SubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()

	state := session.NewState()

	var got []session.Session
	unsubscribe := state.Subscribe(func(s session.Session) {
		got = append(got, s)
	})

	sess := sessionExpiringIn(time.Now(), time.Hour)
	state.Set(sess)
	state.Clear()

	unsubscribe()
	state.Set(sess)

	assert.Len(t, got, 2)
	assert.Equal(t, sess, got[0])
	assert.True(t, got[1].IsZero())
}

func TestState_SubscriberMayReadState(t *testing.T) {
	t.Parallel()

	state := session.NewState()

	// Reading the state from inside a subscriber must not deadlock.
	var seen session.Session
	state.Subscribe(func(session.Session) {
		seen = state.Get()
	})

	sess := sessionExpiringIn(time.Now(), time.Hour)
	state.Set(sess)
	assert.Equal(t, sess, seen)
}
