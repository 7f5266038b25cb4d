package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thdihan/rangva-server/internal/config"
)

func TestNew_RespectsConfiguredLevel(t *testing.T) {
	log := New(&config.Config{AppEnv: "production", LogLevel: slog.LevelWarn})

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}
