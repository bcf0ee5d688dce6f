package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// Config controls handler construction.
type Config struct {
	Level       string
	Format      string
	OTelEnabled bool
	ServiceName string
}

// InitLogger builds the process logger, installs it as slog default and returns it.
// Stdout handlers are always wrapped so trace and request fields reach the JSON output,
// also when OTel export is disabled.
func InitLogger(cfg Config) *slog.Logger {
	return initLogger(os.Stdout, cfg)
}

func initLogger(w io.Writer, cfg Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var stdout slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		stdout = slog.NewTextHandler(w, options)
	} else {
		stdout = slog.NewJSONHandler(w, options)
	}

	var handler slog.Handler = NewContextHandler(stdout)
	if cfg.OTelEnabled {
		handler = newExportTee(handler, cfg.ServiceName)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return Logger
}

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
