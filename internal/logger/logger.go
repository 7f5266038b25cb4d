package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/thdihan/rangva-server/internal/config"
)

// New builds the process-wide logger. Production emits JSON for log
// collectors; everything else gets the text handler. Debug level also turns
// on source locations.
func New(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel,
		AddSource: cfg.LogLevel == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.AppEnv, "production") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With("app", "rangva-server")
	slog.SetDefault(logger)

	return logger
}
