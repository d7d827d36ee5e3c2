package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// listKeyPrefix is the key namespace the dashboard's read tier caches
	// rendered list pages under. Writes here only ever delete those keys.
	listKeyPrefix       = "dashboard:list:"
	invalidationChannel = "dashboard:list:invalidated"
)

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisListCache invalidates cached list pages after a committed write:
// the key for the changed path is dropped and the path is published so
// read-tier instances holding a local copy discard it.
type RedisListCache struct {
	client *redis.Client
}

// NewRedisListCache creates a new Redis-backed list cache
func NewRedisListCache(cfg RedisConfig) (*RedisListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisListCache{client: client}, nil
}

// NewRedisListCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisListCacheWithClient(client *redis.Client) *RedisListCache {
	return &RedisListCache{client: client}
}

// NotifyListChanged drops the cached list for the given path and publishes
// the path on the invalidation channel. Failures are swallowed: a cache
// outage must never fail the mutation that triggered it.
func (c *RedisListCache) NotifyListChanged(ctx context.Context, path string) {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, listKeyPrefix+path)
	pipe.Publish(ctx, invalidationChannel, path)
	_, _ = pipe.Exec(ctx)
}

// Close closes the Redis client
func (c *RedisListCache) Close() error {
	return c.client.Close()
}
