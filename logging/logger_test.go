package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLevel("WARN"))
	assert.Equal(t, LogLevelError, ParseLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLevel("info"))
	assert.Equal(t, LogLevelInfo, ParseLevel("bogus"))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestTaskMeshLogger_ContextualFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: "text", Output: &buf})

	logger.WithComponent("orchestrator").WithSession("sess-1").Info("delegation completed", "agent", "research_agent")

	out := buf.String()
	assert.Contains(t, out, "component=orchestrator")
	assert.Contains(t, out, "session_id=sess-1")
	assert.Contains(t, out, "agent=research_agent")
}

func TestTaskMeshLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "text", Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestTaskMeshLogger_LogModelCall(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	logger.LogModelCall("gpt-4o-mini", 120*time.Millisecond, true, nil)
	assert.Contains(t, buf.String(), "model call completed")

	buf.Reset()
	logger.LogModelCall("gpt-4o-mini", time.Second, false, errors.New("timeout"))
	assert.Contains(t, buf.String(), "model call failed")
	assert.Contains(t, buf.String(), "timeout")
}

func TestNoOpLoggerIsSilent(t *testing.T) {
	// Must not panic; output is discarded by construction.
	logger := NoOpLogger{}
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d", "k", "v")
}
