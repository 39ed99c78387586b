package session

import (
	"sync"
	"time"

	"github.com/hupe1980/taskmesh/core"
)

// InMemoryStore is a volatile SessionStore implementation keeping sessions in
// a process local map. Sessions live only for the lifetime of the process;
// there is no persistence. The store hands out the live *core.Session (which
// is internally synchronized) so that appends made by the orchestrator are
// visible to every holder of the same session id.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Get returns an existing session or creates a new one lazily.
func (s *InMemoryStore) Get(sessionID string) (*core.Session, error) {
	s.mu.RLock()
	if sess, ok := s.sessions[sessionID]; ok {
		s.mu.RUnlock()
		return sess, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return s.createLocked(sessionID), nil
}

// Create forces the creation (or overwriting) of a session with the given id.
func (s *InMemoryStore) Create(sessionID string) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(sessionID), nil
}

// createLocked allocates and stores a new session; caller must already hold
// the write lock.
func (s *InMemoryStore) createLocked(sessionID string) *core.Session {
	sess := core.NewSession(sessionID)
	s.sessions[sessionID] = sess
	return sess
}

// NewID generates a timestamp-derived session identifier.
func NewID() string { return time.Now().Format("20060102_150405") }

var _ core.SessionStore = (*InMemoryStore)(nil)
