package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestInitForCLI_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("Poller", "status refreshed in %dms", 12)
	Debug("Poller", "filtered out")
	Error("API", errors.New("boom"), "request failed")

	out := buf.String()
	assert.Contains(t, out, "status refreshed in 12ms")
	assert.Contains(t, out, "subsystem=Poller")
	assert.Contains(t, out, "error=boom")
	assert.NotContains(t, out, "filtered out")
}

func TestInitForTUI_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()
	require.NotNil(t, ch)

	Debug("Controller", "hidden")
	Warn("Controller", "fast poll failed")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Controller", entry.Subsystem)
		assert.Equal(t, "fast poll failed", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}
}

func TestLogEntryFormat(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)
	entry := LogEntry{Timestamp: ts, Level: LevelError, Subsystem: "API", Message: "connect failed", Err: errors.New("timeout")}
	assert.Equal(t, "03:04:05.006 [ERROR] [API] connect failed -- Error: timeout", entry.Format())
}
