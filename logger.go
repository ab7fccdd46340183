package kmeans

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPartition logs the outcome of the random initial partition.
func (l *Logger) LogPartition(ctx context.Context, attempts int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "random partition failed",
			"attempts", attempts,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "random partition completed",
			"attempts", attempts,
		)
	}
}

// LogIteration logs one reclustering pass.
func (l *Logger) LogIteration(ctx context.Context, iteration, moved, empty int) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"moved", moved,
		"empty_clusters", empty,
	)
}

// LogRun logs the end of a clustering run.
func (l *Logger) LogRun(ctx context.Context, iterations int, converged bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "clustering failed",
			"iterations", iterations,
			"error", err,
		)
	case !converged:
		l.WarnContext(ctx, "clustering stopped at iteration limit",
			"iterations", iterations,
		)
	default:
		l.InfoContext(ctx, "clustering converged",
			"iterations", iterations,
		)
	}
}

// LogMalformedLine logs an input line that was skipped.
func (l *Logger) LogMalformedLine(ctx context.Context, line int, text string, err error) {
	l.WarnContext(ctx, "skipping malformed line",
		"line", line,
		"text", text,
		"error", err,
	)
}
