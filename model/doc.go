// Package model defines the provider-agnostic abstraction for the external
// language model capability used by TaskMesh.
//
// Core goals:
//   - A single schema-constrained completion contract (Complete) so the
//     invoker and router never deal with provider message formats
//   - Structured output as a first-class requirement: every request carries a
//     schema descriptor and every response is raw JSON decodable against it
//   - Lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package in sub-packages so higher layers remain decoupled from vendor SDKs.
package model
