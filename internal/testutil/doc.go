// Package testutil provides small builders and fixtures shared by tests:
// fluent session construction and canned schema-conformant specialist
// results (both typed and as raw JSON for mock model responses).
package testutil
