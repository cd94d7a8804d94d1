package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BigBug273/daily-vocab/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger writing to
// stdout with the configured level and sets it as the default logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)
	return logger, nil
}

// New builds a JSON logger writing to w. Unknown levels fall back to info
// with a warning on stderr.
func New(level string, w io.Writer) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// ParseLevel maps a case-insensitive level name to a slog.Level. The second
// result is false (and the level is info) when the name is unknown.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
