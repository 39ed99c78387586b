package core

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable indicates the external model capability could not
	// be reached or did not respond within the caller-enforced deadline.
	ErrBackendUnavailable = errors.New("model backend unavailable")

	// ErrSchemaViolation indicates the external capability returned a value
	// that does not satisfy the declared output contract.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrSessionNotFound is returned when a session for the given id does not
	// exist in the underlying store.
	ErrSessionNotFound = errors.New("session not found")
)

// ConfigError reports a missing or invalid startup configuration value.
// It is fatal: the process must not proceed to the session loop.
type ConfigError struct {
	// Name of the missing configuration value (e.g. environment variable).
	Name string
	// Reason describes why the value is unusable.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s is not set", e.Name)
}

// NewConfigError creates a ConfigError for a missing configuration value.
func NewConfigError(name, reason string) *ConfigError {
	return &ConfigError{Name: name, Reason: reason}
}

// BackendError wraps a transport or provider failure talking to the external
// model capability. It matches ErrBackendUnavailable via errors.Is.
type BackendError struct {
	// Provider identifies the backend ("openai", "anthropic", "mock", ...).
	Provider string
	// Err is the underlying cause.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *BackendError) Unwrap() error { return e.Err }

// Is reports equivalence to the ErrBackendUnavailable sentinel so callers can
// classify without knowing the concrete type.
func (e *BackendError) Is(target error) bool { return target == ErrBackendUnavailable }

// NewBackendError wraps err as a backend failure attributed to provider.
func NewBackendError(provider string, err error) *BackendError {
	return &BackendError{Provider: provider, Err: err}
}

// SchemaError describes a single contract violation found while validating a
// structured result returned by the external capability. It matches
// ErrSchemaViolation via errors.Is.
type SchemaError struct {
	// Schema names the violated result schema.
	Schema string
	// Field that failed validation (JSON name).
	Field string
	// Message is a human-readable description of the violation.
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation in %s: field %q: %s", e.Schema, e.Field, e.Message)
}

// Is reports equivalence to the ErrSchemaViolation sentinel.
func (e *SchemaError) Is(target error) bool { return target == ErrSchemaViolation }

// NewSchemaError creates a SchemaError for the given schema/field pair.
func NewSchemaError(schema, field, message string) *SchemaError {
	return &SchemaError{Schema: schema, Field: field, Message: message}
}
