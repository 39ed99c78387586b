package orchestrator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/internal/testutil"
)

func TestSummarize_Empty(t *testing.T) {
	sess := testutil.NewSessionBuilder("sess-1").Build()
	assert.Equal(t, NoTasksMessage, Summarize(sess, 5))
}

func TestSummarize_LimitsToMostRecent(t *testing.T) {
	builder := testutil.NewSessionBuilder("sess-1")
	for i := 0; i < 7; i++ {
		builder.Task(core.NewTaskRecord(core.TaskResearch, []string{"research_agent"}, fmt.Sprintf("task %d", i)))
	}
	sess := builder.Build()

	out := Summarize(sess, 5)

	assert.Contains(t, out, "Session sess-1 - 7 tasks completed")
	assert.NotContains(t, out, "task 0")
	assert.NotContains(t, out, "task 1")
	for i := 2; i < 7; i++ {
		assert.Contains(t, out, fmt.Sprintf("task %d", i))
	}

	// Original relative order preserved.
	assert.Less(t, strings.Index(out, "task 2"), strings.Index(out, "task 6"))
}

func TestSummarize_DefaultLimit(t *testing.T) {
	builder := testutil.NewSessionBuilder("sess-1")
	for i := 0; i < 7; i++ {
		builder.Task(core.NewTaskRecord(core.TaskResearch, []string{"research_agent"}, fmt.Sprintf("task %d", i)))
	}
	sess := builder.Build()

	out := Summarize(sess, 0)
	assert.NotContains(t, out, "task 1")
	assert.Contains(t, out, "task 2")
}

func TestSummarize_RendersKindAndAgents(t *testing.T) {
	sess := testutil.NewSessionBuilder("sess-1").
		Task(core.NewTaskRecord(core.TaskComplexAnalysis, []string{"research_agent", "creative_agent"}, "Complex analysis of 'x'")).
		Build()

	out := Summarize(sess, 5)
	assert.Contains(t, out, "COMPLEX_ANALYSIS")
	assert.Contains(t, out, "research_agent, creative_agent")
	assert.Contains(t, out, "completed")
}

func TestSummarize_DoesNotMutate(t *testing.T) {
	sess := testutil.NewSessionBuilder("sess-1").
		Task(core.NewTaskRecord(core.TaskResearch, []string{"research_agent"}, "task")).
		Build()

	before := len(sess.TaskRecords())
	_ = Summarize(sess, 5)
	require.Equal(t, before, len(sess.TaskRecords()))
}
