package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alurafood/payments/internal/utils/requestctx"
)

// Logger wraps slog.Logger for the HTTP layer.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration shared by the slog and zap loggers.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text (console for zap)
	Output io.Writer
}

// DefaultConfig returns default logger configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "json",
		Output: os.Stdout,
	}
}

// New creates a new Logger with the given configuration.
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// parseLevel parses a log level string.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// With returns a new Logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// ForRequest returns a logger annotated with the request ID and subject carried by ctx.
func (l *Logger) ForRequest(ctx context.Context) *Logger {
	var attrs []any
	if id := requestctx.RequestID(ctx); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if subject := requestctx.Subject(ctx); subject != "" {
		attrs = append(attrs, "subject", subject)
	}
	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

// Err returns an error attribute.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
