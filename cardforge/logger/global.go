package logger

import (
	"log/slog"
	"time"
)

// LogCommand records one shell command dispatch with its wall time.
func LogCommand(name string, took time.Duration, err error) {
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("command", name),
		slog.Duration("took", took),
	}
	if err != nil {
		slog.Error("Command failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Info("Command executed", attrs...)
}

// LogQuery records a catalog database operation.
func LogQuery(query string, took time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("query", query),
		slog.Duration("took", took),
	}
	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Info("Query executed", attrs...)
}

// LogSystem records a lifecycle event (startup, config fallback, seeding).
func LogSystem(msg string, attrs ...any) {
	slog.Info(msg, append([]any{slog.String("type", "sys")}, attrs...)...)
}

// LogError records an unexpected failure with its cause.
func LogError(msg string, err error, attrs ...any) {
	base := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(base, attrs...)...)
}
