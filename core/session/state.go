package session

import "sync"

// Subscriber receives the new session snapshot after every state change.
type Subscriber func(Session)

// State owns the current session for one process and notifies subscribers on
// change. Safe for concurrent use. Replacement is always total: Set swaps the
// whole snapshot, Clear resets it to the zero value, so observers can never
// see an access token paired with claims from another token.
type State struct {
	mu      sync.RWMutex
	current Session
	subs    map[int]Subscriber
	nextID  int
}

// NewState creates an empty (logged-out) state.
func NewState() *State {
	return &State{subs: make(map[int]Subscriber)}
}

// Get returns the current session snapshot.
func (s *State) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the current session and notifies subscribers.
func (s *State) Set(sess Session) {
	s.mu.Lock()
	s.current = sess
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(sess)
	}
}

// Clear resets the state to logged out. Idempotent: clearing an already
// empty state is a no-op and does not notify subscribers again.
func (s *State) Clear() {
	s.mu.Lock()
	if s.current.IsZero() {
		s.mu.Unlock()
		return
	}
	s.current = Session{}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(Session{})
	}
}

// Subscribe registers a subscriber and returns an unsubscribe function.
// The subscriber is invoked outside the state lock with a snapshot, so it
// may call Get without deadlocking but must not assume the state has not
// moved on since.
func (s *State) Subscribe(sub Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs copies subscribers while holding the lock, preserving
// registration order.
func (s *State) snapshotSubs() []Subscriber {
	subs := make([]Subscriber, 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if sub, ok := s.subs[id]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}
