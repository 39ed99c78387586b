package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/taskmesh/model"
)

func TestKeywordRouter_Research(t *testing.T) {
	router := NewKeywordRouter()

	decisions, err := router.Route(context.Background(), "Research quantum computing trends")
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.NotNil(t, decisions[0].Research)
	assert.Equal(t, "quantum computing trends", decisions[0].Research.Topic)
}

func TestKeywordRouter_Composite(t *testing.T) {
	router := NewKeywordRouter()

	decisions, err := router.Route(context.Background(), "Do a complex analysis on AI impact on healthcare")
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.NotNil(t, decisions[0].Composite)
	assert.Equal(t, "AI impact on healthcare", decisions[0].Composite.Topic)
}

func TestKeywordRouter_CodeAnalysis(t *testing.T) {
	router := NewKeywordRouter()

	decisions, err := router.Route(context.Background(), "Analyze this Python code: def f(): pass")
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.NotNil(t, decisions[0].CodeAnalysis)
	assert.Equal(t, "def f(): pass", decisions[0].CodeAnalysis.Code)
	assert.Equal(t, "python", decisions[0].CodeAnalysis.Language)
}

func TestKeywordRouter_CodeFence(t *testing.T) {
	router := NewKeywordRouter()

	decisions, err := router.Route(context.Background(), "Review my code please\n```go\nfunc main() {}\n```")
	require.NoError(t, err)
	require.NotNil(t, decisions[0].CodeAnalysis)
	assert.Equal(t, "func main() {}", decisions[0].CodeAnalysis.Code)
	assert.Equal(t, "go", decisions[0].CodeAnalysis.Language)
}

func TestKeywordRouter_ContentCreation(t *testing.T) {
	router := NewKeywordRouter()

	decisions, err := router.Route(context.Background(), "Write a professional email about project updates")
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.NotNil(t, decisions[0].ContentCreation)
	assert.Equal(t, "Write a professional email about project updates", decisions[0].ContentCreation.Request)
}

func TestKeywordRouter_DefaultsToResearch(t *testing.T) {
	router := NewKeywordRouter()

	decisions, err := router.Route(context.Background(), "What is the weather like on Mars?")
	require.NoError(t, err)
	require.NotNil(t, decisions[0].Research)
	assert.Equal(t, "What is the weather like on Mars?", decisions[0].Research.Topic)
}

func TestModelRouter_UsesModelDecision(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("RouteDecision", `{"action":"content_creation","content_request":"a haiku about Go","content_type":"poem","audience":"developers","tone":"playful"}`)
	router := NewModelRouter(llm)

	decisions, err := router.Route(context.Background(), "I'd like a haiku about Go")
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.NotNil(t, decisions[0].ContentCreation)
	assert.Equal(t, "a haiku about Go", decisions[0].ContentCreation.Request)
	assert.Equal(t, "poem", decisions[0].ContentCreation.ContentType)
}

func TestModelRouter_FallsBackOnBackendError(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddError("RouteDecision", errors.New("backend down"))
	router := NewModelRouter(llm)

	decisions, err := router.Route(context.Background(), "Research quantum computing trends")
	require.NoError(t, err)
	require.NotNil(t, decisions[0].Research)
	assert.Equal(t, "quantum computing trends", decisions[0].Research.Topic)
}

func TestModelRouter_FallsBackOnUnknownAction(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("RouteDecision", `{"action":"interpretive_dance"}`)
	router := NewModelRouter(llm)

	decisions, err := router.Route(context.Background(), "Research quantum computing trends")
	require.NoError(t, err)
	require.NotNil(t, decisions[0].Research)
}

func TestModelRouter_FallsBackOnUndecodableDecision(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("RouteDecision", `not json`)
	router := NewModelRouter(llm)

	decisions, err := router.Route(context.Background(), "Research quantum computing trends")
	require.NoError(t, err)
	require.NotNil(t, decisions[0].Research)
}

func TestModelRouter_FillsTopicFromRequest(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("RouteDecision", `{"action":"research"}`)
	router := NewModelRouter(llm)

	decisions, err := router.Route(context.Background(), "dark matter")
	require.NoError(t, err)
	require.NotNil(t, decisions[0].Research)
	assert.Equal(t, "dark matter", decisions[0].Research.Topic)
}
