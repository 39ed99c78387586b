// Package orchestrator implements the delegation orchestrator: given a
// free-form request it classifies the request to one or more specializations,
// invokes the specialist invoker sequentially, records task history in the
// shared session and composes the final response text.
//
// Classification is pluggable through the Router interface. The default setup
// delegates routing to the model capability (ModelRouter) with a
// deterministic keyword-based fallback (KeywordRouter) for when the
// capability is unavailable or emits an unusable decision.
//
// All delegation-level errors are caught at the Handle boundary and converted
// into a distinctly prefixed response string so no error crosses the session
// boundary as a panic or return value.
package orchestrator
