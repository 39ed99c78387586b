package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/internal/util"
	"github.com/hupe1980/taskmesh/logging"
	"github.com/hupe1980/taskmesh/model"
	"github.com/hupe1980/taskmesh/specialist"
)

// CompositeInput carries the topic for the fixed research-then-report
// pipeline.
type CompositeInput struct {
	Topic string
}

// Decision is a tagged variant describing one routed delegation. Exactly one
// field is set.
type Decision struct {
	Research        *specialist.ResearchInput
	CodeAnalysis    *specialist.CodeAnalysisInput
	ContentCreation *specialist.ContentInput
	Composite       *CompositeInput
}

// Router classifies a free-form request into an ordered list of delegations.
// The order of the returned decisions is the invocation order.
type Router interface {
	Route(ctx context.Context, request string) ([]Decision, error)
}

// KeywordRouter is the deterministic rule-based router. It serves both as a
// standalone router and as the fallback when model-backed routing is
// unavailable.
type KeywordRouter struct{}

// NewKeywordRouter creates a KeywordRouter.
func NewKeywordRouter() *KeywordRouter { return &KeywordRouter{} }

// Route implements Router. Rules, in precedence order:
//
//  1. "complex analysis" / "comprehensive analysis" -> composite pipeline
//  2. code markers (code fence, "analyze this" + code keywords) -> code analysis
//  3. writing verbs (write, create, draft, compose) or content nouns -> content creation
//  4. everything else -> research
func (r *KeywordRouter) Route(_ context.Context, request string) ([]Decision, error) {
	lower := strings.ToLower(request)

	if strings.Contains(lower, "complex analysis") || strings.Contains(lower, "comprehensive analysis") {
		return []Decision{{Composite: &CompositeInput{Topic: compositeTopic(request, lower)}}}, nil
	}

	if looksLikeCode(lower) {
		code, language := splitCodeRequest(request)
		return []Decision{{CodeAnalysis: &specialist.CodeAnalysisInput{Code: code, Language: language}}}, nil
	}

	if looksLikeContentRequest(lower) {
		return []Decision{{ContentCreation: &specialist.ContentInput{Request: request}}}, nil
	}

	return []Decision{{Research: &specialist.ResearchInput{Topic: researchTopic(request, lower)}}}, nil
}

// compositeTopic extracts the subject of a complex analysis request.
func compositeTopic(request, lower string) string {
	for _, marker := range []string{"complex analysis on ", "complex analysis of ", "comprehensive analysis on ", "comprehensive analysis of "} {
		if idx := strings.Index(lower, marker); idx >= 0 {
			return strings.TrimSpace(request[idx+len(marker):])
		}
	}
	return strings.TrimSpace(request)
}

// researchTopic strips a leading "research" verb so the topic reads cleanly.
func researchTopic(request, lower string) string {
	for _, prefix := range []string{"research ", "investigate ", "look into "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(request[len(prefix):])
		}
	}
	return strings.TrimSpace(request)
}

func looksLikeCode(lower string) bool {
	if strings.Contains(lower, "```") {
		return true
	}
	if !strings.Contains(lower, "code") {
		return false
	}
	for _, marker := range []string{"analyze", "review", "check", "audit"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func looksLikeContentRequest(lower string) bool {
	for _, marker := range []string{"write ", "create ", "draft ", "compose ", "blog", "email", "article", "social media", "marketing copy", "story", "poem"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// splitCodeRequest separates instruction text from the code snippet. A fenced
// block wins; otherwise everything after the first colon is treated as code.
func splitCodeRequest(request string) (code, language string) {
	if start := strings.Index(request, "```"); start >= 0 {
		rest := request[start+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			language = strings.TrimSpace(rest[:nl])
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest), language
	}
	if idx := strings.IndexByte(request, ':'); idx >= 0 {
		return strings.TrimSpace(request[idx+1:]), guessLanguage(strings.ToLower(request[:idx]))
	}
	return strings.TrimSpace(request), ""
}

func guessLanguage(instruction string) string {
	for _, lang := range []string{"python", "go", "javascript", "typescript", "java", "rust", "ruby", "c++", "c#"} {
		if strings.Contains(instruction, lang) {
			return lang
		}
	}
	return ""
}

var _ Router = (*KeywordRouter)(nil)

// coordinatorInstructions is the routing role description given to the model
// capability.
const coordinatorInstructions = `You are the COORDINATOR AI agent managing a team of specialists:

Your team:
 - Research Agent: handles research and information gathering
 - Code Agent: analyzes and reviews code
 - Creative Agent: creates written content and copy

Your role is to understand the user request and decide which specialist
should handle it.

Coordination rules:
 - For research topics -> research
 - For code analysis -> code_analysis (extract the code and language)
 - For content creation -> content_creation
 - For complex analysis requests -> complex_analysis (research plus report)

Emit exactly one routing decision with the fields the chosen specialist
needs.`

// routeChoice is the structured routing decision emitted by the model.
type routeChoice struct {
	Action         string `json:"action" description:"One of research, code_analysis, content_creation, complex_analysis" validate:"required,oneof=research code_analysis content_creation complex_analysis"`
	Topic          string `json:"topic,omitempty" description:"Research topic, for research and complex_analysis"`
	Code           string `json:"code,omitempty" description:"Code snippet to analyze, for code_analysis"`
	Language       string `json:"language,omitempty" description:"Programming language of the code, if known"`
	ContentRequest string `json:"content_request,omitempty" description:"What to write, for content_creation"`
	ContentType    string `json:"content_type,omitempty" description:"Type of content (article, email, report, ...)"`
	Audience       string `json:"audience,omitempty" description:"Target audience"`
	Tone           string `json:"tone,omitempty" description:"Writing tone"`
}

// ModelRouter delegates classification to the model capability constrained to
// emit a routeChoice. Any backend failure, undecodable value or unknown
// action falls back to the deterministic router so routing never depends on
// backend availability.
type ModelRouter struct {
	llm      model.Model
	fallback Router
	logger   logging.Logger
}

// ModelRouterOptions configures a ModelRouter.
type ModelRouterOptions struct {
	// Fallback router used when the capability cannot route (defaults to
	// KeywordRouter).
	Fallback Router
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// NewModelRouter creates a ModelRouter backed by the given model.
func NewModelRouter(llm model.Model, optFns ...func(o *ModelRouterOptions)) *ModelRouter {
	opts := ModelRouterOptions{
		Fallback: NewKeywordRouter(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ModelRouter{llm: llm, fallback: opts.Fallback, logger: opts.Logger}
}

// Route implements Router.
func (r *ModelRouter) Route(ctx context.Context, request string) ([]Decision, error) {
	resp, err := r.llm.Complete(ctx, model.Request{
		Instructions: coordinatorInstructions,
		Input:        request,
		Schema: &model.SchemaDef{
			Name:        "RouteDecision",
			Description: "Routing decision choosing the specialist for a request",
			Parameters:  util.CreateSchema(routeChoice{}),
		},
	})
	if err != nil {
		r.logger.Warn("router.model_unavailable", "error", err.Error())
		return r.fallback.Route(ctx, request)
	}

	var choice routeChoice
	if err := json.Unmarshal(resp.Raw, &choice); err != nil {
		r.logger.Warn("router.undecodable_decision", "error", err.Error())
		return r.fallback.Route(ctx, request)
	}

	decision, err := choice.toDecision(request)
	if err != nil {
		r.logger.Warn("router.unusable_decision", "error", err.Error())
		return r.fallback.Route(ctx, request)
	}

	return []Decision{decision}, nil
}

// toDecision maps the structured choice onto a Decision, filling gaps from
// the raw request.
func (c routeChoice) toDecision(request string) (Decision, error) {
	switch core.TaskKind(c.Action) {
	case core.TaskResearch:
		topic := c.Topic
		if topic == "" {
			topic = request
		}
		return Decision{Research: &specialist.ResearchInput{Topic: topic}}, nil
	case core.TaskCodeAnalysis:
		code := c.Code
		if code == "" {
			code = request
		}
		return Decision{CodeAnalysis: &specialist.CodeAnalysisInput{Code: code, Language: c.Language}}, nil
	case core.TaskContentCreation:
		req := c.ContentRequest
		if req == "" {
			req = request
		}
		return Decision{ContentCreation: &specialist.ContentInput{
			Request:     req,
			ContentType: c.ContentType,
			Audience:    c.Audience,
			Tone:        c.Tone,
		}}, nil
	case core.TaskComplexAnalysis:
		topic := c.Topic
		if topic == "" {
			topic = request
		}
		return Decision{Composite: &CompositeInput{Topic: topic}}, nil
	default:
		return Decision{}, fmt.Errorf("unknown routing action %q", c.Action)
	}
}

var _ Router = (*ModelRouter)(nil)
