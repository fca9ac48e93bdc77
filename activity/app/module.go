package app

import (
	"context"
	"io"

	"github.com/activitylog/api/activity/cache"
	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/activity/event"
	"github.com/activitylog/api/activity/repository"
	"github.com/activitylog/api/activity/rest"
	"github.com/activitylog/api/activity/service"
	"github.com/activitylog/api/config"
	"github.com/activitylog/api/pkg/logger"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitActivityConfig(configName, configPath)
	if err != nil {
		return nil, err
	}
	logger.InitLogger(cfg.Logging)

	return fx.Options(
		fx.Provide(func() config.ActivityConfig {
			return cfg
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.ServerConfig {
			return activityCfg.Server
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.StorageConfig {
			return activityCfg.Storage
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.MongoDBConfig {
			return activityCfg.MongoDB
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.SQLConfig {
			return activityCfg.SQL
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.PaginationConfig {
			return activityCfg.Pagination
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.RetentionConfig {
			return activityCfg.Retention
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.CacheConfig {
			return activityCfg.Cache
		}),
		fx.Provide(func(activityCfg config.ActivityConfig) config.NATSConfig {
			return activityCfg.NATS
		}),
	), nil
}

// newManagedRepository ensures indexes once the store is opened and closes it on shutdown.
func newManagedRepository(lc fx.Lifecycle, params repository.Params) (domain.Repository, error) {
	repo, err := repository.NewRepository(params)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.EnsureIndexes(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return repo.Close(ctx)
		},
	})
	return repo, nil
}

// newManagedCache closes cache connections, such as the redis client, on shutdown.
func newManagedCache(lc fx.Lifecycle, cfg config.CacheConfig) (domain.RecordCache, error) {
	recordCache, err := cache.NewRecordCache(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := recordCache.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return recordCache, nil
}

func newManagedPublisher(lc fx.Lifecycle, cfg config.NATSConfig) (domain.EventPublisher, error) {
	publisher, err := event.NewPublisher(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

// RepoModule creates an Fx module that provides the repository layer, return domain.Repository
func RepoModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(newManagedRepository),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	repoModule, err := RepoModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		repoModule,
		fx.Provide(newManagedCache),
		fx.Provide(newManagedPublisher),
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
