package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// SchemaDef declaratively describes the structured output a completion must
// conform to. Parameters is a JSON Schema object (draft agnostic, minimal
// subset expected by providers).
type SchemaDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

// Request captures the normalized model input produced by the invoker and
// router.
type Request struct {
	// Instructions is the fixed role description for the completion.
	Instructions string `json:"instructions"`
	// Input is the request payload rendered as text.
	Input string `json:"input"`
	// Schema constrains the output. It is required: TaskMesh only speaks
	// structured output to its backends.
	Schema *SchemaDef `json:"schema"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the structured completion returned by a backend. Raw holds the
// schema-conformant JSON value; decoding and validation happen at the caller.
type Response struct {
	Raw   json.RawMessage `json:"raw"`
	Usage *TokenUsage     `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the only interface to the language model backend. Implementations
// must support schema-constrained output and return either a conformant raw
// value or an error; they never write to the session.
type Model interface {
	// Complete performs one blocking completion call. Transport and provider
	// failures must be surfaced as *core.BackendError.
	Complete(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests. Responses are
// registered per schema name, which is how real calls are distinguished
// (every invoker and router request carries a distinct schema).
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	errs      map[string]error
	requests  []Request
}

// NewMockModel constructs an empty MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
		errs:      make(map[string]error),
	}
}

// AddResponse registers a canned raw JSON completion for a schema name.
func (m *MockModel) AddResponse(schemaName, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[schemaName] = raw
}

// AddError registers an error to return for a schema name.
func (m *MockModel) AddError(schemaName string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[schemaName] = err
}

// Requests returns a copy of all requests seen so far, in order.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if req.Schema == nil {
		return Response{}, fmt.Errorf("mock model requires a schema")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if err, ok := m.errs[req.Schema.Name]; ok {
		return Response{}, err
	}
	raw, ok := m.responses[req.Schema.Name]
	if !ok {
		return Response{}, fmt.Errorf("no mock response registered for schema %q", req.Schema.Name)
	}
	return Response{Raw: json.RawMessage(raw)}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }

var _ Model = (*MockModel)(nil)
