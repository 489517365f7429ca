// Package observability provides logger construction and Prometheus metrics
// for the NCEI client.
package observability

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/lorendsnow/ncei-ghcn-data/internal/config"
)

// NewLogger builds a slog.Logger from the configured level and format.
// Format "text" uses a tinted console handler for interactive use; anything
// else gets JSON.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
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
