package app

import (
	"io"
	"log/slog"

	"github.com/cyk-dot/rtigen/internal/conlog"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(outW, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level})
	default:
		handler = conlog.NewHandler(outW, level)
	}

	return slog.New(handler)
}
