package orchestrator

import (
	"fmt"
	"strings"

	"github.com/hupe1980/taskmesh/core"
)

// DefaultHistoryLimit is the number of task records shown by Summarize when
// no explicit limit is given.
const DefaultHistoryLimit = 5

// NoTasksMessage is returned by Summarize for a session without completed
// tasks.
const NoTasksMessage = "No tasks completed yet in this session."

// Summarize returns a human-readable rendering of the most recent limit task
// records, most-recent-last. It is a pure read; the session is not mutated.
func Summarize(sess *core.Session, limit int) string {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	total := len(sess.TaskRecords())
	if total == 0 {
		return NoTasksMessage
	}

	recent := sess.RecentTasks(limit)

	var b strings.Builder
	fmt.Fprintf(&b, "Session %s - %d tasks completed:\n\n", sess.ID, total)
	for i, task := range recent {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, strings.ToUpper(string(task.Kind)), task.Summary)
		fmt.Fprintf(&b, "   Agents: %s | Status: %s\n\n", strings.Join(task.Agents, ", "), task.Status)
	}

	return strings.TrimRight(b.String(), "\n")
}
