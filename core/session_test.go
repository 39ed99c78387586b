package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AppendEntry(t *testing.T) {
	sess := NewSession("sess-1")

	sess.AppendEntry(NewUserEntry("hello"))
	sess.AppendEntry(NewAssistantEntry("hi there"))

	entries := sess.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, RoleUser, entries[0].Role)
	assert.Equal(t, "hello", entries[0].Content)
	assert.Equal(t, RoleAssistant, entries[1].Role)
	assert.Equal(t, "coordinator", entries[1].Agent)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestSession_RecentTasks(t *testing.T) {
	sess := NewSession("sess-1")
	for i := 0; i < 7; i++ {
		sess.AppendTask(NewTaskRecord(TaskResearch, []string{"research_agent"}, fmt.Sprintf("task %d", i)))
	}

	recent := sess.RecentTasks(5)
	require.Len(t, recent, 5)
	// Last five, original relative order.
	for i, rec := range recent {
		assert.Equal(t, fmt.Sprintf("task %d", i+2), rec.Summary)
	}

	assert.Empty(t, sess.RecentTasks(0))
	assert.Len(t, sess.RecentTasks(100), 7)
}

func TestSession_PutResultOverwrites(t *testing.T) {
	sess := NewSession("sess-1")

	first := &ResearchResult{Topic: "first", Summary: "s", KeyPoints: []string{"a", "b", "c"}, Confidence: ConfidenceLow}
	second := &ResearchResult{Topic: "second", Summary: "s", KeyPoints: []string{"a", "b", "c"}, Confidence: ConfidenceHigh}

	sess.PutResult("research_agent", first)
	sess.PutResult("research_agent", second)

	got, ok := sess.Result("research_agent")
	require.True(t, ok)
	assert.Equal(t, "second", got.(*ResearchResult).Topic)

	_, ok = sess.Result("code_agent")
	assert.False(t, ok)
}

func TestSession_DefensiveCopies(t *testing.T) {
	sess := NewSession("sess-1")
	sess.AppendTask(NewTaskRecord(TaskResearch, []string{"research_agent"}, "original"))

	tasks := sess.TaskRecords()
	tasks[0].Summary = "mutated"

	assert.Equal(t, "original", sess.TaskRecords()[0].Summary)
}

func TestSession_Clone(t *testing.T) {
	sess := NewSession("sess-1")
	sess.AppendEntry(NewUserEntry("hello"))
	sess.AppendTask(NewTaskRecord(TaskResearch, []string{"research_agent"}, "task"))

	clone := sess.Clone()
	clone.AppendEntry(NewUserEntry("clone only"))
	clone.AppendTask(NewTaskRecord(TaskCodeAnalysis, []string{"code_agent"}, "clone task"))

	assert.Len(t, sess.Entries(), 1)
	assert.Len(t, sess.TaskRecords(), 1)
	assert.Len(t, clone.Entries(), 2)
	assert.Len(t, clone.TaskRecords(), 2)
}

func TestSession_RecentConversation(t *testing.T) {
	sess := NewSession("sess-1")
	assert.Empty(t, sess.RecentConversation(5))

	sess.AppendEntry(NewUserEntry("first"))
	sess.AppendEntry(NewAssistantEntry("second"))
	sess.AppendEntry(NewUserEntry("third"))

	got := sess.RecentConversation(2)
	assert.Equal(t, "[coordinator] assistant: second\n[user] user: third", got)
}
