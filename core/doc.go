// Package core provides the foundational domain types and interfaces used by
// TaskMesh. It defines the core abstractions for:
//
//   - Sessions (stateful conversational containers with task history)
//   - Conversation entries and task records (immutable, append-only)
//   - Specialist results (schema-validated structured outputs)
//   - Pluggable session storage
//
// The package intentionally keeps implementation concerns (model backends,
// orchestration, concrete storage) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
