package observability

import (
	"log/slog"
	"os"

	"github.com/flyready/question-engine/internal/config"
)

// SetupLogger builds the process-wide JSON logger. Every line carries the
// service and environment so generation logs from multiple replicas can be
// filtered in one stream.
func SetupLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(cfg)}
	h := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(h).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", cfg.AppEnv),
	)
}

// logLevel maps the environment onto a log level: debug in dev, warn under
// test so per-request info lines stay out of test output, info otherwise.
func logLevel(cfg config.Config) slog.Level {
	switch {
	case cfg.IsDev():
		return slog.LevelDebug
	case cfg.IsTest():
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
