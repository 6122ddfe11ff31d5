package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestTextLogger_WritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "info")

	log.Info(context.Background(), "store opened", "path", "tracker.db")

	out := buf.String()
	require.Contains(t, out, "store opened")
	require.Contains(t, out, "path=tracker.db")
}

func TestTextLogger_LevelFiltersLowerRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "warn")

	log.Info(context.Background(), "should be dropped")
	log.Warn(context.Background(), "should be kept")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "should be kept")
}

func TestWith_IncludesBoundAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "info").With("component", "session")

	log.Info(context.Background(), "established")

	assert.Contains(t, buf.String(), "component=session")
}
