package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{raw: "debug", want: slog.LevelDebug},
		{raw: " INFO ", want: slog.LevelInfo},
		{raw: "error", want: slog.LevelError},
		{raw: "warn", want: slog.LevelWarn},
		{raw: "", want: slog.LevelWarn},
		{raw: "verbose", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestNewJSONLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: FormatJSON, Output: &buf})

	logger.Debug("hidden")
	logger.Info("session restored", "user", "alice")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session restored", entry["msg"])
	assert.Equal(t, "alice", entry["user"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestOrDiscardNeverReturnsNil(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))

	logger := New(DefaultConfig())
	assert.Same(t, logger, OrDiscard(logger))
}
