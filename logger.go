package tablekit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tablekit-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogSearch logs a search recomputation.
func (l *Logger) LogSearch(query string, total, matched int) {
	l.Debug("search applied",
		"query", query,
		"total", total,
		"matched", matched,
	)
}

// LogSort logs a sort recomputation.
func (l *Logger) LogSort(key, direction string, rows int) {
	l.Debug("sort applied",
		"key", key,
		"direction", direction,
		"rows", rows,
	)
}

// LogPaginate logs a window computation, including any page clamping.
func (l *Logger) LogPaginate(requested, clamped, totalPages, windowRows int) {
	if requested != clamped {
		l.Debug("page clamped",
			"requested", requested,
			"page", clamped,
			"total_pages", totalPages,
			"rows", windowRows,
		)
	} else {
		l.Debug("page computed",
			"page", clamped,
			"total_pages", totalPages,
			"rows", windowRows,
		)
	}
}

// LogSelection logs a selection mutation.
func (l *Logger) LogSelection(op string, selected int) {
	l.Debug("selection changed",
		"op", op,
		"selected", selected,
	)
}
