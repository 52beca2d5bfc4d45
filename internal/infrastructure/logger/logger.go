package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/config"
)

// Setup configures the process-wide slog logger from log_config and returns
// it for injection where a module-global is not wanted.
func Setup(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var output io.Writer = os.Stdout
	if cfg.LogOutput != "" && cfg.LogOutput != "stdout" {
		if f, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			output = f
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
