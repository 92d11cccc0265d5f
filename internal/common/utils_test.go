package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(nil))
	require.Equal(t, ContentHash([]byte("Word,Count\n")), ContentHash([]byte("Word,Count\n")))
	require.NotEqual(t, ContentHash([]byte("a")), ContentHash([]byte("b")))
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	require.Len(t, a, 36)
	require.NotEqual(t, a, b)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LoggerOptions{Level: "info", Format: "json"})

	logger.Debug("hidden")
	logger.Info("loaded", "rows", 2)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "loaded", line["msg"])
	require.Equal(t, float64(2), line["rows"])
}

func TestNewLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LoggerOptions{Level: "debug", Format: "text", Quiet: true})

	logger.Warn("dropped")
	require.Empty(t, buf.String())

	logger.Error("kept")
	require.Contains(t, buf.String(), "msg=kept")
}
