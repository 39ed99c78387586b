// Package specialist implements the specialist agent invoker: a thin wrapper
// around a single schema-constrained call to the external model capability
// for one of the three specializations (research, code analysis, content
// creation).
//
// The invoker owns instruction construction, output schema derivation and
// decode-and-validate at the system boundary. It deliberately performs no
// session writes; logging results into the shared context is the caller's
// responsibility to keep separation of concerns thin.
package specialist
