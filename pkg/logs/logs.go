// Package logs assembles the process-wide slog logger from central config.
// Output can fan out to stdout, a rotating file, and a Loki push endpoint
// at the same time.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/medera/medera_backend/config"
)

// New builds the configured logger. Every record carries the service
// identity attributes so aggregated logs stay searchable.
func New(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)
	dev := strings.EqualFold(cfg.Server.Environment, "development")

	handlers := buildHandlers(cfg, level, dev)

	var root slog.Handler
	if len(handlers) == 1 {
		root = handlers[0]
	} else {
		root = &multiHandler{handlers: handlers}
	}

	return slog.New(root).With(
		slog.String("service", cfg.Observability.ServiceName),
		slog.String("version", cfg.Observability.ServiceVersion),
		slog.String("env", cfg.Server.Environment),
	)
}

func buildHandlers(cfg *config.Config, level slog.Level, dev bool) []slog.Handler {
	out := cfg.Logging.Output

	var writers []io.Writer
	// Stdout stays on when explicitly enabled, and also as the fallback
	// sink when no other output is configured.
	if out.Stdout || (!out.File.Enabled && !out.Loki.Enabled) {
		writers = append(writers, os.Stdout)
	}
	if out.File.Enabled {
		writers = append(writers, &lumberjack.Logger{
			Filename:   out.File.Path,
			MaxSize:    out.File.MaxSizeMB,
			MaxBackups: out.File.MaxBackups,
			MaxAge:     out.File.MaxAgeDays,
			Compress:   out.File.Compress,
		})
	}

	var handlers []slog.Handler
	if len(writers) > 0 {
		opts := &slog.HandlerOptions{Level: level, AddSource: dev}
		w := io.MultiWriter(writers...)
		if dev && !strings.EqualFold(cfg.Logging.Format, "json") {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		} else {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		}
	}
	if out.Loki.Enabled {
		handlers = append(handlers, newLokiHandler(cfg, level))
	}
	return handlers
}

// Default is the logger used before config has been read, for example in
// cobra command setup and early fx wiring.
func Default() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With(slog.String("service", "medera_backend"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
