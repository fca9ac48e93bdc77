package logger

import (
	"context"
	"io"
	"os"

	"github.com/activitylog/api/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger builds the process logger from cfg and installs it as the
// fallback for contexts that carry none.
func InitLogger(cfg config.LoggingConfig) *zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()
	zerolog.SetGlobalLevel(level)
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
