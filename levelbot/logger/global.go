package logger

import (
	"log/slog"
	"time"
)

// Commands slower than this are reported at warn level even when they
// succeed.
const slowCommandThreshold = 2 * time.Second

// LogCommand reports the outcome of one command invocation: failed, slow
// or completed.
func LogCommand(name, user string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.String("user_name", user),
		slog.Duration("took", duration),
	}

	switch {
	case err != nil:
		slog.Error("Command failed", append(attrs,
			slog.Any("error", err),
			slog.String("status", "failed"),
		)...)
	case duration > slowCommandThreshold:
		slog.Warn("Command executed slowly", append(attrs,
			slog.String("status", "slow"),
		)...)
	default:
		slog.Info("Command completed", append(attrs,
			slog.String("status", "success"),
		)...)
	}
}

// LogQuery logs one raw SQL execution. Successful queries are debug-level
// noise; failures carry the statement at error level.
func LogQuery(query string, rows int64, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("query", query),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Debug("Query executed", append(attrs,
		slog.Int64("affected_rows", rows),
	)...)
}

// LogSystem logs lifecycle events (startup, sync, shutdown).
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events outside the command and query paths.
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
