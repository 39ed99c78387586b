package core

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Session is the shared coordination context for one multi-agent session. It
// holds the append-only conversation log, the append-only task log and the
// most recent result per specialist agent. It is safe for concurrent access.
//
// Contract:
//   - Conversation and task logs are append-only; entries are immutable once
//     appended and insertion order is significant
//   - Read accessors return defensive copies so callers cannot mutate
//     internal state
//   - Clone performs deep copies of slices/maps for safe divergence
type Session struct {
	ID           string                      `json:"id"`
	Conversation []ConversationEntry         `json:"conversation"`
	Tasks        []TaskRecord                `json:"tasks"`
	Results      map[string]SpecialistResult `json:"results"`
	Created      time.Time                   `json:"created"`
	Updated      time.Time                   `json:"updated"`
	mu           sync.RWMutex
}

// NewSession creates an empty session with the given id.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:      id,
		Results: map[string]SpecialistResult{},
		Created: now,
		Updated: now,
	}
}

// AppendEntry adds a conversation entry to the log.
func (s *Session) AppendEntry(entry ConversationEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Conversation = append(s.Conversation, entry)
	s.Updated = time.Now()
}

// AppendTask adds a completed task record to the task log.
func (s *Session) AppendTask(record TaskRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tasks = append(s.Tasks, record)
	s.Updated = time.Now()
}

// PutResult stores the latest result for an agent, overwriting any previous
// entry for that agent.
func (s *Session) PutResult(agent string, result SpecialistResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Results[agent] = result
	s.Updated = time.Now()
}

// Result returns the last stored result for an agent and an existence flag.
func (s *Session) Result(agent string) (SpecialistResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.Results[agent]
	return r, ok
}

// Entries returns a copy of the full conversation log.
func (s *Session) Entries() []ConversationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConversationEntry, len(s.Conversation))
	copy(out, s.Conversation)
	return out
}

// TaskRecords returns a copy of the full task log.
func (s *Session) TaskRecords() []TaskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TaskRecord, len(s.Tasks))
	copy(out, s.Tasks)
	return out
}

// RecentTasks returns a copy of the most recent limit task records in their
// original relative order. A non-positive limit yields an empty slice.
func (s *Session) RecentTasks(limit int) []TaskRecord {
	if limit <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.Tasks) - limit
	if start < 0 {
		start = 0
	}
	out := make([]TaskRecord, len(s.Tasks)-start)
	copy(out, s.Tasks[start:])
	return out
}

// RecentConversation renders the most recent limit conversation entries as a
// compact "[agent] role: content" transcript for prompt context.
func (s *Session) RecentConversation(limit int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.Conversation) - limit
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for i, e := range s.Conversation[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] %s: %s", e.Agent, e.Role, e.Content)
	}
	return b.String()
}

// Clone returns a deep copy that can diverge safely from the original.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{
		ID:           s.ID,
		Conversation: make([]ConversationEntry, len(s.Conversation)),
		Tasks:        make([]TaskRecord, len(s.Tasks)),
		Results:      make(map[string]SpecialistResult, len(s.Results)),
		Created:      s.Created,
		Updated:      s.Updated,
	}
	copy(clone.Conversation, s.Conversation)
	copy(clone.Tasks, s.Tasks)
	for k, v := range s.Results {
		clone.Results[k] = v
	}
	return clone
}

// SessionStore abstracts session persistence so backends can be swapped
// without touching orchestration code. Implementations must be safe for
// concurrent use.
type SessionStore interface {
	// Get returns the session for the given id, creating it lazily if it
	// does not exist yet.
	Get(sessionID string) (*Session, error)

	// Create forces creation of a fresh session with the given id,
	// overwriting any existing one.
	Create(sessionID string) (*Session, error)
}
