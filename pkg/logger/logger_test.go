package logger

import (
	"context"
	"io"
	"testing"

	"github.com/activitylog/api/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerSetsLevelAndDefault(t *testing.T) {
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		zerolog.DefaultContextLogger = nil
	})

	l := InitLogger(config.LoggingConfig{Level: "warn"})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Same(t, l, Logger(context.Background()))
}

func TestInitLoggerFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		zerolog.DefaultContextLogger = nil
	})

	InitLogger(config.LoggingConfig{Level: "loud", Console: true})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestLoggerUsesContextLogger(t *testing.T) {
	custom := zerolog.New(io.Discard).With().Str("component", "test").Logger()
	ctx := custom.WithContext(context.Background())
	assert.Equal(t, custom, *Logger(ctx))
}
