// Package taskmesh provides a high-level façade over the delegation
// orchestrator and service abstractions (sessions, specialists & logging)
// enabling rapid construction of coordinator/specialist systems. Most
// applications interact with this package by:
//  1. Creating a TaskMesh via New() with a model backend (optionally
//     overriding the default in-memory session store, router or logger)
//  2. Creating a session (NewSession)
//  3. Processing free-form requests (Process) and inspecting task history
//     (History)
//
// The façade delegates request handling to orchestrator.Orchestrator while
// keeping setup and usage ergonomics concise. All defaults are safe for local
// development and testing.
package taskmesh

import (
	"context"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/logging"
	"github.com/hupe1980/taskmesh/model"
	"github.com/hupe1980/taskmesh/orchestrator"
	"github.com/hupe1980/taskmesh/session"
	"github.com/hupe1980/taskmesh/specialist"
)

// Options configures the TaskMesh instance.
type Options struct {
	// Router classifies requests. Defaults to a model-backed router with a
	// deterministic keyword fallback.
	Router orchestrator.Router

	// SessionStore (defaults to an in-memory implementation if not provided)
	SessionStore core.SessionStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// TaskMesh is the high-level façade aggregating the orchestrator and
// services.
type TaskMesh struct {
	opts         Options
	sessionStore core.SessionStore
	orchestrator *orchestrator.Orchestrator
}

// New creates a new TaskMesh instance around a model backend with optional
// overrides. Any unset service is initialized with a default implementation.
func New(llm model.Model, optFns ...func(o *Options)) *TaskMesh {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Router == nil {
		opts.Router = orchestrator.NewModelRouter(llm, func(o *orchestrator.ModelRouterOptions) {
			o.Logger = opts.Logger
		})
	}

	invoker := specialist.NewInvoker(llm, func(o *specialist.InvokerOptions) {
		o.Logger = opts.Logger
	})

	orch := orchestrator.New(invoker, func(o *orchestrator.Options) {
		o.Router = opts.Router
		o.Logger = opts.Logger
	})

	return &TaskMesh{opts: opts, sessionStore: opts.SessionStore, orchestrator: orch}
}

// NewSession creates a fresh session and returns its timestamp-derived id.
func (m *TaskMesh) NewSession() (string, error) {
	id := session.NewID()
	if _, err := m.sessionStore.Create(id); err != nil {
		return "", err
	}
	return id, nil
}

// Process handles one free-form request within the given session, returning
// the response text. Delegation failures are reported in the response text
// (prefixed with orchestrator.ErrorResponsePrefix), not as an error; the
// returned error covers session access only.
func (m *TaskMesh) Process(ctx context.Context, sessionID, request string) (string, error) {
	sess, err := m.sessionStore.Get(sessionID)
	if err != nil {
		return "", err
	}
	return m.orchestrator.Handle(ctx, request, sess), nil
}

// History returns the task history rendering for the given session.
func (m *TaskMesh) History(sessionID string, limit int) (string, error) {
	sess, err := m.sessionStore.Get(sessionID)
	if err != nil {
		return "", err
	}
	return orchestrator.Summarize(sess, limit), nil
}

// Session exposes the underlying session for inspection.
func (m *TaskMesh) Session(sessionID string) (*core.Session, error) {
	return m.sessionStore.Get(sessionID)
}
