package cache

import (
	"context"
	"fmt"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
)

// NewRecordCache builds the read-through cache selected by cache.driver.
func NewRecordCache(cfg config.CacheConfig) (domain.RecordCache, error) {
	switch cfg.Driver {
	case config.CacheDriverNone, "":
		return noopCache{}, nil
	case config.CacheDriverMemory:
		return NewMemoryCache(cfg.Capacity, cfg.TTL), nil
	case config.CacheDriverRedis:
		return NewRedisCache(cfg.RedisURL.Value(), cfg.Prefix, cfg.TTL)
	}
	return nil, fmt.Errorf("unsupported cache driver %q", cfg.Driver)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*domain.Activity, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, *domain.Activity) error {
	return nil
}

func (noopCache) Purge(context.Context) error {
	return nil
}
