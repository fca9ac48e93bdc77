package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/activity/rest"
	"github.com/activitylog/api/activity/service"
	"github.com/activitylog/api/config"
	"github.com/activitylog/api/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.NopLogger,
		fx.Invoke(StartRestApp),
		fx.Invoke(StartRetentionSweeper),
	)
	return app, nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Server.ReadTimeout = cfg.ReadTimeout
	engine.Server.WriteTimeout = cfg.WriteTimeout
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":3000"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// StartRetentionSweeper periodically deletes activities older than
// retention.days when retention is enabled.
func StartRetentionSweeper(lc fx.Lifecycle, cfg config.RetentionConfig, svc domain.Service) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Days <= 0 {
		return errors.New("retention.days must be positive when retention is enabled")
	}

	sweeper := service.NewRetentionSweeper(svc, cfg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
	return nil
}
