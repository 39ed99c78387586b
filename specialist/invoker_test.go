package specialist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/internal/testutil"
	"github.com/hupe1980/taskmesh/model"
)

func TestInvoker_Research(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("ResearchResult", testutil.ResearchJSON)
	invoker := NewInvoker(llm)

	result, err := invoker.Research(context.Background(), ResearchInput{Topic: "quantum computing trends"})
	require.NoError(t, err)

	assert.Equal(t, "quantum computing trends", result.Topic)
	assert.Len(t, result.KeyPoints, 3)
	assert.Equal(t, core.ConfidenceMedium, result.Confidence)

	requests := llm.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Instructions, "RESEARCH SPECIALIST")
	assert.Equal(t, "Research this topic: quantum computing trends", requests[0].Input)
}

func TestInvoker_AnalyzeCode(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("CodeAnalysisResult", testutil.CodeAnalysisJSON)
	invoker := NewInvoker(llm)

	result, err := invoker.AnalyzeCode(context.Background(), CodeAnalysisInput{Code: "def f(): pass", Language: "python"})
	require.NoError(t, err)

	assert.Equal(t, "Python", result.Language)
	assert.Equal(t, 3, result.ComplexityScore)
}

func TestInvoker_CreateContent(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("CreativeContentResult", testutil.CreativeJSON)
	invoker := NewInvoker(llm)

	result, err := invoker.CreateContent(context.Background(), ContentInput{Request: "project updates"})
	require.NoError(t, err)

	assert.Equal(t, "report", result.ContentType)
	assert.Equal(t, result.ActualWordCount(), result.WordCount)
}

func TestInvoker_NormalizesWordCount(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddResponse("CreativeContentResult", `{
		"content_type": "article",
		"title": "Title",
		"content": "exactly four words here",
		"target_audience": "general",
		"tone": "casual",
		"word_count": 999
	}`)
	invoker := NewInvoker(llm)

	result, err := invoker.CreateContent(context.Background(), ContentInput{Request: "anything"})
	require.NoError(t, err)
	assert.Equal(t, 4, result.WordCount)
}

func TestInvoker_SchemaViolation(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		schema  string
		raw     string
	}{
		{
			name:    "2 key points",
			payload: ResearchInput{Topic: "x"},
			schema:  "ResearchResult",
			raw:     `{"topic":"x","summary":"s","key_points":["a","b"],"confidence_level":"High"}`,
		},
		{
			name:    "6 key points",
			payload: ResearchInput{Topic: "x"},
			schema:  "ResearchResult",
			raw:     `{"topic":"x","summary":"s","key_points":["a","b","c","d","e","f"],"confidence_level":"High"}`,
		},
		{
			name:    "complexity score 0",
			payload: CodeAnalysisInput{Code: "x"},
			schema:  "CodeAnalysisResult",
			raw:     `{"language":"Go","complexity_score":0}`,
		},
		{
			name:    "complexity score 11",
			payload: CodeAnalysisInput{Code: "x"},
			schema:  "CodeAnalysisResult",
			raw:     `{"language":"Go","complexity_score":11}`,
		},
		{
			name:    "not valid JSON",
			payload: ResearchInput{Topic: "x"},
			schema:  "ResearchResult",
			raw:     `not json at all`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := model.NewMockModel("test")
			llm.AddResponse(tt.schema, tt.raw)
			invoker := NewInvoker(llm)

			_, err := invoker.Invoke(context.Background(), tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrSchemaViolation)
		})
	}
}

func TestInvoker_BackendErrorSurfaced(t *testing.T) {
	llm := model.NewMockModel("test")
	llm.AddError("ResearchResult", core.NewBackendError("mock", errors.New("connection reset")))
	invoker := NewInvoker(llm)

	_, err := invoker.Invoke(context.Background(), ResearchInput{Topic: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBackendUnavailable)
	assert.NotErrorIs(t, err, core.ErrSchemaViolation)
}
