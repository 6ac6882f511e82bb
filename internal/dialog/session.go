package dialog

import (
	"sync"
	"time"
)

type session struct {
	state    State
	lastSeen time.Time
}

// SessionStore keeps the dialogue position per user. Sessions are created
// lazily on first write and default to Idle; all operations are total over
// every UserID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[UserID]*session
	now      func() time.Time
}

// NewSessionStore constructs an empty in-memory store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[UserID]*session),
		now:      time.Now,
	}
}

// Get returns the current state for a user, Idle if the user has never been
// seen.
func (s *SessionStore) Get(user UserID) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[user]; ok {
		return sess.state
	}
	return Idle{}
}

// Set updates the state for a user, creating the session if necessary.
func (s *SessionStore) Set(user UserID, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[user]
	if !ok {
		sess = &session{}
		s.sessions[user] = sess
	}
	sess.state = st
	sess.lastSeen = s.now()
}

// Touch refreshes the last-seen timestamp without changing state.
func (s *SessionStore) Touch(user UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[user]
	if !ok {
		sess = &session{state: Idle{}}
		s.sessions[user] = sess
	}
	sess.lastSeen = s.now()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle drops sessions whose last activity is older than the cutoff and
// returns how many were removed. Nothing schedules this by default; hosts
// that care about retention call it on their own timer.
func (s *SessionStore) EvictIdle(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-olderThan)
	evicted := 0
	for user, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, user)
			evicted++
		}
	}
	return evicted
}
