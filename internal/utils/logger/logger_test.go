package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"cobros/internal/app/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNew_WithLevel(t *testing.T) {
	ctx := context.Background()

	logger := New(config.EnvLocal, WithLevel("warn"))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))

	// unknown names keep the environment default
	logger = New(config.EnvProd, WithLevel("loud"))
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.EnvProd, WithWriter(&buf))

	logger.With("component", "store").Info("collection loaded", "items", 3)

	out := buf.String()
	assert.Contains(t, out, `"msg":"collection loaded"`)
	assert.Contains(t, out, `"component":"store"`)
	assert.Contains(t, out, `"items":3`)
}

func TestSetupPrettySlog(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	logger := setupPrettySlog(&buf, slog.LevelDebug)
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger.With("component", "app").WithGroup("req").Error("failed", Err(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, `"component": "app"`)
	assert.Contains(t, out, `"req.error": "boom"`)
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, ok = ParseLevel("")
	assert.False(t, ok)
}
