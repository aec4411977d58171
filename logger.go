package grann

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with grann-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, k, resultsFound, iterations int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"k", k,
			"results", resultsFound,
			"iterations", iterations,
			"duration", duration,
		)
	}
}

// LogBuild logs a graph build operation.
func (l *Logger) LogBuild(ctx context.Context, n, degree int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph build failed",
			"nodes", n,
			"degree", degree,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "graph built",
			"nodes", n,
			"degree", degree,
			"duration", duration,
		)
	}
}

// LogLoad logs an index load from disk.
func (l *Logger) LogLoad(ctx context.Context, path string, n, dim int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index loaded",
			"path", path,
			"nodes", n,
			"dimension", dim,
			"duration", duration,
		)
	}
}

// LogBatchSearch logs a batch search operation.
func (l *Logger) LogBatchSearch(ctx context.Context, queries int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch search failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch search completed",
			"queries", queries,
			"duration", duration,
		)
	}
}
