package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

// Module provides the application logger
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates a slog.Logger configured from the environment.
// LOG_LEVEL selects the minimum level (debug/info/warn/error, default info).
// In production (GO_ENV=production) logs are emitted as JSON.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// Scope returns an attribute identifying the logging component
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error returns an attribute carrying an error value
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
