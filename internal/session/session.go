// Package session tracks which users are currently active. The store is an
// injected interface rather than process-global state, so callers can swap
// the in-memory implementation for a shared one and tests can isolate it.
package session

import (
	"fmt"
	"sync"
	"time"
)

// User identifies the session owner.
type User struct {
	ID        string
	FirstName string
	UserType  string // CHILD or PARENT
}

// Session is one active connection.
type Session struct {
	ID           string
	User         User
	ConnectedAt  time.Time
	LastActivity time.Time
}

// Store tracks active sessions keyed by user type and id, so a user has at
// most one live session per role.
type Store interface {
	// Track registers or refreshes a session and returns its id.
	Track(user User) string

	// Touch updates the last-activity time of a session, if it exists.
	Touch(sessionID string)

	// Active returns all live sessions, oldest connection first.
	Active() []Session

	// End removes a session.
	End(sessionID string)
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	order    []string
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Track(user User) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s_%s", user.UserType, user.ID)
	now := s.now()

	if existing, ok := s.sessions[id]; ok {
		existing.User = user
		existing.LastActivity = now
		s.sessions[id] = existing
		return id
	}

	s.sessions[id] = Session{
		ID:           id,
		User:         user,
		ConnectedAt:  now,
		LastActivity: now,
	}
	s.order = append(s.order, id)
	return id
}

func (s *MemoryStore) Touch(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		sess.LastActivity = s.now()
		s.sessions[sessionID] = sess
	}
}

func (s *MemoryStore) Active() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Session, 0, len(s.sessions))
	for _, id := range s.order {
		if sess, ok := s.sessions[id]; ok {
			out = append(out, sess)
		}
	}
	return out
}

func (s *MemoryStore) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
