// Package logging builds the slog loggers used by blogctl and carries them
// through context.
//
// A run logger is built once per command from the log config and tagged
// with a fresh run id, so every line of one invocation can be grouped:
//
//	logger := logging.ForRun(logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr), uuid.NewString())
//	ctx = logging.WithLogger(ctx, logger)
//
// Code without an injected logger reads it back with FromContext.
//
// Error logs name the operation and the entity keys involved and attach the
// error chain:
//
//	logger.ErrorContext(ctx, "failed to load post",
//	    slog.String("operation", "GetPost"),
//	    slog.Int64("post_pk", pk),
//	    slog.Any("error", err),
//	)
//
// Sensitive user fields are masked by the handler; see SensitiveFields.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// RunIDKey is the attribute carrying the id of one blogctl invocation.
const RunIDKey = "run_id"

type contextKey struct{}

// New creates a logger writing to w.
//
// level is one of debug, info, warn or error, in any case; anything else
// logs at info. format "text" selects the text handler and any other value
// JSON. Debug output includes the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ForRun returns logger tagged with runID under RunIDKey.
func ForRun(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With(slog.String(RunIDKey, runID))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel accepts the names slog itself understands. Offsets such as
// "warn+2" are also accepted.
func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
