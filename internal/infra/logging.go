package infra

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogging routes slog to stdout and an append-only log file.
// The returned closer flushes and closes the file; the slog handler
// serializes writes, so concurrent submissions cannot interleave lines.
func SetupLogging(cfg *Config) (func(), error) {
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.Logging.File, err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, f), &slog.HandlerOptions{
		Level: parseLevel(cfg.Logging.Level),
	})
	slog.SetDefault(slog.New(handler))

	return func() { f.Close() }, nil
}

func parseLevel(level string) slog.Level {
	switch level {
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
