package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/logging"
	"github.com/hupe1980/taskmesh/model"
)

// InvokerOptions configures an Invoker instance.
type InvokerOptions struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Invoker wraps a single schema-constrained call to the external model
// capability for one specialization. It validates the returned value against
// the declared result schema before handing it to the caller and performs no
// session writes.
type Invoker struct {
	llm    model.Model
	logger logging.Logger
}

// NewInvoker creates an Invoker backed by the given model.
func NewInvoker(llm model.Model, optFns ...func(o *InvokerOptions)) *Invoker {
	opts := InvokerOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Invoker{llm: llm, logger: opts.Logger}
}

// Invoke performs one delegation: it builds the specialization-specific
// instruction, calls the model constrained to the corresponding result
// schema, then decodes and validates the returned value.
//
// Error semantics:
//
//	*core.BackendError -> the capability could not be reached or failed
//	*core.SchemaError  -> the returned value violates the output contract
//
// Neither is retried; both are surfaced to the caller unchanged.
func (i *Invoker) Invoke(ctx context.Context, payload Payload) (core.SpecialistResult, error) {
	spec := payload.Specialization()
	start := time.Now()

	instructions, err := Instructions(spec)
	if err != nil {
		return nil, err
	}
	input, err := payload.Render()
	if err != nil {
		return nil, fmt.Errorf("render payload: %w", err)
	}
	schema, err := SchemaFor(spec)
	if err != nil {
		return nil, err
	}

	i.logger.Debug("specialist.invoke.start", "specialization", string(spec), "schema", schema.Name)

	resp, err := i.llm.Complete(ctx, model.Request{
		Instructions: instructions,
		Input:        input,
		Schema:       schema,
	})
	if err != nil {
		i.logger.Error("specialist.invoke.backend_error", "specialization", string(spec), "error", err.Error())
		return nil, err
	}

	result, err := decodeResult(spec, schema.Name, resp.Raw)
	if err != nil {
		i.logger.Warn("specialist.invoke.schema_violation", "specialization", string(spec), "error", err.Error())
		return nil, err
	}

	i.logger.Info("specialist.invoke.success",
		"specialization", string(spec),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// Research delegates a research task and returns the typed result.
func (i *Invoker) Research(ctx context.Context, input ResearchInput) (*core.ResearchResult, error) {
	result, err := i.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}
	return result.(*core.ResearchResult), nil
}

// AnalyzeCode delegates a code review task and returns the typed result.
func (i *Invoker) AnalyzeCode(ctx context.Context, input CodeAnalysisInput) (*core.CodeAnalysisResult, error) {
	result, err := i.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}
	return result.(*core.CodeAnalysisResult), nil
}

// CreateContent delegates a content creation task and returns the typed
// result.
func (i *Invoker) CreateContent(ctx context.Context, input ContentInput) (*core.CreativeContentResult, error) {
	result, err := i.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}
	return result.(*core.CreativeContentResult), nil
}

// decodeResult unmarshals the raw structured value into the typed result for
// the specialization and runs schema validation. The reported word count of
// creative content is normalized to the actual word count of the body before
// validation so the stored invariant always holds.
func decodeResult(spec core.Specialization, schemaName string, raw json.RawMessage) (core.SpecialistResult, error) {
	var result core.SpecialistResult
	switch spec {
	case core.SpecializationResearch:
		result = &core.ResearchResult{}
	case core.SpecializationCodeAnalysis:
		result = &core.CodeAnalysisResult{}
	case core.SpecializationContentCreation:
		result = &core.CreativeContentResult{}
	default:
		return nil, fmt.Errorf("unknown specialization %q", spec)
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return nil, core.NewSchemaError(schemaName, "", fmt.Sprintf("response is not valid JSON for the schema: %v", err))
	}

	if creative, ok := result.(*core.CreativeContentResult); ok {
		if actual := creative.ActualWordCount(); actual > 0 && creative.WordCount != actual {
			creative.WordCount = actual
		}
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}
