package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "activity:"
	purgeBatch    = 500
)

// RedisCache shares activity records between service instances.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(url, prefix string, ttl time.Duration) (*RedisCache, error) {
	if url == "" {
		return nil, errors.New("redis url must not be empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url, err: %w", err)
	}
	return NewRedisCacheWithClient(redis.NewClient(opts), prefix, ttl), nil
}

func NewRedisCacheWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(id string) string {
	return c.prefix + id
}

func (c *RedisCache) Get(ctx context.Context, id string) (*domain.Activity, bool, error) {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s, err: %w", id, err)
	}
	var activity domain.Activity
	if err := json.Unmarshal(payload, &activity); err != nil {
		return nil, false, fmt.Errorf("decode cached activity %s, err: %w", id, err)
	}
	return &activity, true, nil
}

func (c *RedisCache) Set(ctx context.Context, activity *domain.Activity) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("encode activity, err: %w", err)
	}
	if err := c.client.Set(ctx, c.key(activity.ID.Hex()), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set, err: %w", err)
	}
	return nil
}

// Purge removes every key under the cache prefix.
func (c *RedisCache) Purge(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", purgeBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan, err: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del, err: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
