package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/logging"
	"github.com/hupe1980/taskmesh/specialist"
)

// ErrorResponsePrefix distinctly marks failure responses so callers and tests
// can detect failed turns without exceptions crossing the session boundary.
const ErrorResponsePrefix = "Error processing request: "

// Options configures an Orchestrator instance.
type Options struct {
	// Router classifies requests (defaults to KeywordRouter).
	Router Router
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Orchestrator handles one request at a time for a session: it classifies
// the request, sequentially delegates to specialists, records task history
// in the shared session and composes the final response text.
type Orchestrator struct {
	invoker *specialist.Invoker
	router  Router
	logger  logging.Logger
}

// New creates an Orchestrator around the given invoker.
func New(invoker *specialist.Invoker, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Router: NewKeywordRouter(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Orchestrator{invoker: invoker, router: opts.Router, logger: opts.Logger}
}

// Handle processes one free-form request against the session.
//
// Per call the session gains exactly one user entry at the start, one task
// record per specialist invoked (plus one composite record for the pipeline
// case) and, on success, one assistant entry at the end. On failure the error
// is surfaced as the response text with ErrorResponsePrefix and recorded as a
// system entry; writes made before the failure persist.
func (o *Orchestrator) Handle(ctx context.Context, request string, sess *core.Session) string {
	sess.AppendEntry(core.NewUserEntry(request))

	response, err := o.process(ctx, request, sess)
	if err != nil {
		o.logger.Error("orchestrator.request_failed", "error", err.Error())
		msg := ErrorResponsePrefix + err.Error()
		sess.AppendEntry(core.NewSystemEntry(msg, "error"))
		return msg
	}

	sess.AppendEntry(core.NewAssistantEntry(response))
	return response
}

// process runs classification and delegation, returning the synthesized
// response text.
func (o *Orchestrator) process(ctx context.Context, request string, sess *core.Session) (string, error) {
	decisions, err := o.router.Route(ctx, request)
	if err != nil {
		return "", fmt.Errorf("route request: %w", err)
	}
	if len(decisions) == 0 {
		return "", fmt.Errorf("router returned no delegation for request")
	}

	sections := make([]string, 0, len(decisions))
	for _, decision := range decisions {
		section, err := o.execute(ctx, decision, sess)
		if err != nil {
			return "", err
		}
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n\n"), nil
}

// execute performs a single routed delegation and records its outcome.
func (o *Orchestrator) execute(ctx context.Context, decision Decision, sess *core.Session) (string, error) {
	switch {
	case decision.Research != nil:
		result, err := o.delegate(ctx, sess, *decision.Research)
		if err != nil {
			return "", err
		}
		return FormatResult(result), nil
	case decision.CodeAnalysis != nil:
		result, err := o.delegate(ctx, sess, *decision.CodeAnalysis)
		if err != nil {
			return "", err
		}
		return FormatResult(result), nil
	case decision.ContentCreation != nil:
		result, err := o.delegate(ctx, sess, *decision.ContentCreation)
		if err != nil {
			return "", err
		}
		return FormatResult(result), nil
	case decision.Composite != nil:
		return o.executeComposite(ctx, *decision.Composite, sess)
	default:
		return "", fmt.Errorf("empty routing decision")
	}
}

// delegate invokes one specialist and applies the bookkeeping shared by all
// single delegations: one task record and the last-result slot for the agent.
func (o *Orchestrator) delegate(ctx context.Context, sess *core.Session, payload specialist.Payload) (core.SpecialistResult, error) {
	spec := payload.Specialization()
	start := time.Now()

	result, err := o.invoker.Invoke(ctx, payload)
	if err != nil {
		return nil, err
	}

	agent := spec.AgentName()
	sess.AppendTask(core.NewTaskRecord(spec.TaskKind(), []string{agent}, result.ResultSummary()))
	sess.PutResult(agent, result)

	o.logger.Info("orchestrator.delegated",
		"specialization", string(spec),
		"agent", agent,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// executeComposite runs the fixed two-step pipeline: research the topic, then
// feed the research summary and key points into a content creation call
// requesting a report. The second call observes the first call's full result.
// One additional composite task record lists both specialists in invocation
// order, independent of the two per-specialist records.
func (o *Orchestrator) executeComposite(ctx context.Context, input CompositeInput, sess *core.Session) (string, error) {
	research, err := o.delegate(ctx, sess, specialist.ResearchInput{Topic: input.Topic})
	if err != nil {
		return "", err
	}
	researchResult := research.(*core.ResearchResult)

	reportRequest := fmt.Sprintf(
		"Create a comprehensive report based on this research: %s. Include the key points: %s",
		researchResult.Summary,
		strings.Join(researchResult.KeyPoints, ", "),
	)

	content, err := o.delegate(ctx, sess, specialist.ContentInput{
		Request:     reportRequest,
		ContentType: "report",
		Audience:    "professional",
		Tone:        "analytical",
	})
	if err != nil {
		return "", err
	}

	sess.AppendTask(core.NewTaskRecord(
		core.TaskComplexAnalysis,
		[]string{core.SpecializationResearch.AgentName(), core.SpecializationContentCreation.AgentName()},
		fmt.Sprintf("Complex analysis of '%s' with research and report generation", input.Topic),
	))

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		researchSectionMarker,
		FormatResearch(researchResult),
		reportSectionMarker,
		FormatResult(content),
	), nil
}
