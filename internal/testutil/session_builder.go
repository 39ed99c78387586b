package testutil

import (
	"github.com/hupe1980/taskmesh/core"
)

// SessionBuilder helps construct sessions with fluent chaining for tests.
// Example:
//
//	sess := NewSessionBuilder("sess-1").Task(rec1, rec2).Build()
type SessionBuilder struct {
	id      string
	entries []core.ConversationEntry
	tasks   []core.TaskRecord
	results map[string]core.SpecialistResult
}

// NewSessionBuilder creates a new builder for a session with the given id.
// Use chainable methods (Entry, Task, Result) then call Build.
func NewSessionBuilder(id string) *SessionBuilder {
	return &SessionBuilder{id: id, results: map[string]core.SpecialistResult{}}
}

// Entry appends conversation entries to the session log (chainable).
func (b *SessionBuilder) Entry(entries ...core.ConversationEntry) *SessionBuilder {
	b.entries = append(b.entries, entries...)
	return b
}

// Task appends task records to the session task log (chainable).
func (b *SessionBuilder) Task(records ...core.TaskRecord) *SessionBuilder {
	b.tasks = append(b.tasks, records...)
	return b
}

// Result stores a last-result entry for an agent (chainable).
func (b *SessionBuilder) Result(agent string, result core.SpecialistResult) *SessionBuilder {
	b.results[agent] = result
	return b
}

// Build returns a *core.Session with pre-populated logs and results.
func (b *SessionBuilder) Build() *core.Session {
	s := core.NewSession(b.id)

	for _, e := range b.entries {
		s.AppendEntry(e)
	}
	for _, t := range b.tasks {
		s.AppendTask(t)
	}
	for agent, r := range b.results {
		s.PutResult(agent, r)
	}

	return s
}
