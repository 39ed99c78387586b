package core

import "time"

// TaskKind classifies a delegated unit of work.
type TaskKind string

const (
	// TaskResearch covers topic research and analysis.
	TaskResearch TaskKind = "research"
	// TaskCodeAnalysis covers code review and assessment.
	TaskCodeAnalysis TaskKind = "code_analysis"
	// TaskContentCreation covers writing and content generation.
	TaskContentCreation TaskKind = "content_creation"
	// TaskComplexAnalysis is the fixed research-then-report pipeline using
	// multiple specialists.
	TaskComplexAnalysis TaskKind = "complex_analysis"
)

// TaskStatus is the terminal outcome of a delegated task.
type TaskStatus string

const (
	// TaskCompleted marks a successfully finished task.
	TaskCompleted TaskStatus = "completed"
	// TaskFailed marks a task that surfaced an error.
	TaskFailed TaskStatus = "failed"
)

// TaskRecord summarizes one completed unit of delegated work. Records are
// appended to a session's task log by the orchestrator and never mutated.
type TaskRecord struct {
	Kind      TaskKind   `json:"kind"`
	Agents    []string   `json:"agents"`
	Status    TaskStatus `json:"status"`
	Summary   string     `json:"summary"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewTaskRecord creates a completed task record for the given kind, invoked
// agents (in invocation order) and summary text.
func NewTaskRecord(kind TaskKind, agents []string, summary string) TaskRecord {
	return TaskRecord{
		Kind:      kind,
		Agents:    agents,
		Status:    TaskCompleted,
		Summary:   summary,
		Timestamp: time.Now().UTC(),
	}
}
