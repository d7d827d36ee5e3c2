package cache

import (
	"context"
	"fmt"

	"github.com/acme/dashboard/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ListCache is the invalidation port shared by the Redis and in-memory
// implementations. Mutations only ever notify; list pages are cached and
// read by the dashboard's read tier, not by this service.
type ListCache interface {
	NotifyListChanged(ctx context.Context, path string)
}

// ListCacheFactory creates list caches based on configuration
type ListCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// ListCacheFactoryOption is a functional option for configuring the factory
type ListCacheFactoryOption func(*ListCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) ListCacheFactoryOption {
	return func(f *ListCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) ListCacheFactoryOption {
	return func(f *ListCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewListCacheFactory creates a new factory
func NewListCacheFactory(cfg config.RedisConfig, opts ...ListCacheFactoryOption) *ListCacheFactory {
	f := &ListCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed list cache
func (f *ListCacheFactory) CreateRedisCache() (ListCache, error) {
	cache, err := NewRedisListCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis list cache: %w", err)
	}
	return cache, nil
}

// CreateCache creates a list cache, trying Redis first and falling back to
// the in-memory cache when Redis is not available and fallback is allowed
func (f *ListCacheFactory) CreateCache() (ListCache, error) {
	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis list cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for list cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory list cache. "+
		"Invalidations will not propagate across instances.",
		zap.Error(err),
	)
	return NewInMemoryListCache(), nil
}
