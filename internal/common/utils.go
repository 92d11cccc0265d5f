package common

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// NewRunID returns a fresh identifier for correlating a run's log lines.
func NewRunID() string {
	return uuid.NewString()
}

// LoggerOptions selects the handler and level for NewLogger.
type LoggerOptions struct {
	Level  string
	Format string
	Quiet  bool
}

// NewLogger builds the structured logger used by every command. Quiet
// overrides Level and only lets errors through.
func NewLogger(w io.Writer, opts LoggerOptions) *slog.Logger {
	level := ParseLevel(opts.Level)
	if opts.Quiet {
		level = slog.LevelError
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch opts.Format {
	case "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
