package core

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Specialization identifies one of the specialist agents available for
// delegation.
type Specialization string

const (
	// SpecializationResearch handles topic research and information gathering.
	SpecializationResearch Specialization = "research"
	// SpecializationCodeAnalysis handles code review and assessment.
	SpecializationCodeAnalysis Specialization = "code_analysis"
	// SpecializationContentCreation handles writing and content generation.
	SpecializationContentCreation Specialization = "content_creation"
)

// AgentName returns the identifier under which a specialist's results are
// stored in the session result map.
func (s Specialization) AgentName() string {
	switch s {
	case SpecializationResearch:
		return "research_agent"
	case SpecializationCodeAnalysis:
		return "code_agent"
	case SpecializationContentCreation:
		return "creative_agent"
	default:
		return string(s)
	}
}

// TaskKind maps the specialization onto the task classification used in
// task records.
func (s Specialization) TaskKind() TaskKind {
	switch s {
	case SpecializationCodeAnalysis:
		return TaskCodeAnalysis
	case SpecializationContentCreation:
		return TaskContentCreation
	default:
		return TaskResearch
	}
}

// Confidence grades the reliability of research findings.
type Confidence string

const (
	// ConfidenceHigh indicates well-established findings.
	ConfidenceHigh Confidence = "High"
	// ConfidenceMedium indicates findings needing some verification.
	ConfidenceMedium Confidence = "Medium"
	// ConfidenceLow indicates speculative or contested findings.
	ConfidenceLow Confidence = "Low"
)

// SpecialistResult is the typed output contract every specialist agent must
// conform to. Implementations are plain structs decoded from the model
// backend's structured output and validated at the system boundary.
type SpecialistResult interface {
	// Specialization returns which specialist produced the result.
	Specialization() Specialization

	// ResultSummary returns a one-line description used in task records.
	ResultSummary() string

	// Validate checks the declared schema invariants, returning a
	// *SchemaError (matching ErrSchemaViolation) on the first violation.
	Validate() error
}

// ResearchResult is the research specialist's output.
type ResearchResult struct {
	Topic         string     `json:"topic" description:"The research topic" validate:"required"`
	Summary       string     `json:"summary" description:"Brief summary of findings" validate:"required"`
	KeyPoints     []string   `json:"key_points" description:"3-5 key findings" validate:"min=3,max=5,dive,required"`
	Confidence    Confidence `json:"confidence_level" description:"High, Medium, or Low confidence" validate:"required,oneof=High Medium Low"`
	SourcesNeeded []string   `json:"sources_needed,omitempty" description:"Recommended sources for verification"`
}

// Specialization implements SpecialistResult.
func (r *ResearchResult) Specialization() Specialization { return SpecializationResearch }

// ResultSummary implements SpecialistResult.
func (r *ResearchResult) ResultSummary() string {
	return "Researched: " + r.Topic + " (Confidence: " + string(r.Confidence) + ")"
}

// Validate implements SpecialistResult.
func (r *ResearchResult) Validate() error { return validateResult("ResearchResult", r) }

// CodeAnalysisResult is the code analysis specialist's output.
type CodeAnalysisResult struct {
	Language         string   `json:"language" description:"Programming language detected" validate:"required"`
	ComplexityScore  int      `json:"complexity_score" description:"Code complexity on a 1-10 scale" validate:"min=1,max=10"`
	Issues           []string `json:"issues_found,omitempty" description:"Issues identified"`
	Suggestions      []string `json:"suggestions,omitempty" description:"Improvement suggestions"`
	SecurityConcerns []string `json:"security_concerns,omitempty" description:"Security issues"`
}

// Specialization implements SpecialistResult.
func (r *CodeAnalysisResult) Specialization() Specialization { return SpecializationCodeAnalysis }

// ResultSummary implements SpecialistResult.
func (r *CodeAnalysisResult) ResultSummary() string {
	return "Analyzed " + r.Language + " code (Complexity: " + strconv.Itoa(r.ComplexityScore) + "/10)"
}

// Validate implements SpecialistResult.
func (r *CodeAnalysisResult) Validate() error { return validateResult("CodeAnalysisResult", r) }

// CreativeContentResult is the content creation specialist's output.
type CreativeContentResult struct {
	ContentType    string `json:"content_type" description:"Type of content created" validate:"required"`
	Title          string `json:"title" description:"Content title" validate:"required"`
	Body           string `json:"content" description:"The actual content" validate:"required"`
	TargetAudience string `json:"target_audience" description:"Intended audience" validate:"required"`
	Tone           string `json:"tone" description:"Writing tone used" validate:"required"`
	WordCount      int    `json:"word_count" description:"Word count of the content" validate:"min=1"`
}

// Specialization implements SpecialistResult.
func (r *CreativeContentResult) Specialization() Specialization { return SpecializationContentCreation }

// ResultSummary implements SpecialistResult.
func (r *CreativeContentResult) ResultSummary() string {
	return "Created " + r.ContentType + ": " + r.Title + " (" + strconv.Itoa(r.WordCount) + " words)"
}

// Validate implements SpecialistResult.
func (r *CreativeContentResult) Validate() error { return validateResult("CreativeContentResult", r) }

// ActualWordCount returns the whitespace-separated word count of Body. The
// backend-reported WordCount is normalized against this value at the invoker
// boundary so the invariant holds for every accepted result.
func (r *CreativeContentResult) ActualWordCount() int { return len(strings.Fields(r.Body)) }

// Compile-time interface checks.
var (
	_ SpecialistResult = (*ResearchResult)(nil)
	_ SpecialistResult = (*CodeAnalysisResult)(nil)
	_ SpecialistResult = (*CreativeContentResult)(nil)
)

// resultValidator is the shared validator instance configured to report JSON
// field names in violations.
var resultValidator = newResultValidator()

func newResultValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateResult runs struct validation and converts the first violation into
// a *SchemaError carrying the schema and JSON field name.
func validateResult(schema string, result any) error {
	err := resultValidator.Struct(result)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewSchemaError(schema, fe.Field(), fieldViolation(fe))
	}
	return NewSchemaError(schema, "", err.Error())
}

func fieldViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing or empty"
	case "min":
		return "value below minimum " + fe.Param()
	case "max":
		return "value above maximum " + fe.Param()
	case "oneof":
		return "value must be one of: " + fe.Param()
	default:
		return "failed constraint " + fe.Tag()
	}
}
