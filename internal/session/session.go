package session

import (
	"sync"

	"github.com/rs/xid"
)

// Session is the server-side record a browser cookie token points at.
type Session struct {
	UserID int
	Name   string
}

// Store maps opaque tokens to sessions for the lifetime of the process.
// It is injected into handlers rather than accessed as a package global.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create registers a session and returns its token.
func (s *Store) Create(userID int, name string) string {
	token := xid.New().String()
	s.mu.Lock()
	s.sessions[token] = Session{UserID: userID, Name: name}
	s.mu.Unlock()
	return token
}

func (s *Store) Get(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

// Destroy removes the session unconditionally. Destroying an unknown token is
// a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
