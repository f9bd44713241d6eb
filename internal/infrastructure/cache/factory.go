package cache

import (
	"fmt"

	"github.com/mdm/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SegmentCacheFactory creates segment caches based on configuration
type SegmentCacheFactory struct {
	redisConfig           config.RedisConfig
	cacheConfig           config.CacheConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SegmentCacheFactoryOption is a functional option for configuring the factory
type SegmentCacheFactoryOption func(*SegmentCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SegmentCacheFactoryOption {
	return func(f *SegmentCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) SegmentCacheFactoryOption {
	return func(f *SegmentCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSegmentCacheFactory creates a new factory
func NewSegmentCacheFactory(redisCfg config.RedisConfig, cacheCfg config.CacheConfig, opts ...SegmentCacheFactoryOption) *SegmentCacheFactory {
	f := &SegmentCacheFactory{
		redisConfig:           redisCfg,
		cacheConfig:           cacheCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache creates a segment cache, preferring Redis and falling back to an
// in-memory cache when Redis is unavailable and the fallback is allowed
func (f *SegmentCacheFactory) CreateCache() (SegmentCache, error) {
	cache, err := NewRedisSegmentCache(f.redisConfig,
		WithTTL(f.cacheConfig.TTL),
		WithCacheLogger(f.logger),
	)
	if err == nil {
		f.logger.Info("using Redis segment cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for segment cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory segment cache. "+
		"Cache entries will not be shared across process instances.",
		zap.Error(err),
	)
	return NewInMemorySegmentCache(f.cacheConfig.TTL), nil
}
