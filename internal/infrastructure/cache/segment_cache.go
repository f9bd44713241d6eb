package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SegmentCache caches the flat, ordered segment list of one axis. The tree
// endpoint assembles the forest from this list, so one invalidation per axis
// keeps every reader consistent.
type SegmentCache interface {
	// GetAxisSegments returns the cached segments and whether the key was present
	GetAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, bool, error)
	SetAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID, segments []classification.Segment) error
	// InvalidateAxis drops the cached list after any segment mutation in the axis
	InvalidateAxis(ctx context.Context, tenantID, axisID uuid.UUID) error
	Close() error
}

// RedisSegmentCache implements SegmentCache using Redis
type RedisSegmentCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisSegmentCacheOption is a functional option for configuring the cache
type RedisSegmentCacheOption func(*RedisSegmentCache)

// WithTTL sets the cache entry lifetime
func WithTTL(ttl time.Duration) RedisSegmentCacheOption {
	return func(c *RedisSegmentCache) {
		c.ttl = ttl
	}
}

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisSegmentCacheOption {
	return func(c *RedisSegmentCache) {
		c.logger = logger
	}
}

// NewRedisSegmentCache creates a new Redis-based segment cache
func NewRedisSegmentCache(cfg config.RedisConfig, opts ...RedisSegmentCacheOption) (*RedisSegmentCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisSegmentCache{
		client:     client,
		ownsClient: true,
		ttl:        5 * time.Minute,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisSegmentCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisSegmentCacheWithClient(client *redis.Client, opts ...RedisSegmentCacheOption) *RedisSegmentCache {
	cache := &RedisSegmentCache{
		client:     client,
		ownsClient: false,
		ttl:        5 * time.Minute,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func axisCacheKey(tenantID, axisID uuid.UUID) string {
	return fmt.Sprintf("segments:%s:%s", tenantID, axisID)
}

// GetAxisSegments implements SegmentCache
func (c *RedisSegmentCache) GetAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, bool, error) {
	data, err := c.client.Get(ctx, axisCacheKey(tenantID, axisID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read segment cache: %w", err)
	}

	var segments []classification.Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		// A corrupt entry is treated as a miss and dropped
		c.logger.Warn("dropping corrupt segment cache entry",
			zap.String("tenant_id", tenantID.String()),
			zap.String("axis_id", axisID.String()),
			zap.Error(err),
		)
		_ = c.client.Del(ctx, axisCacheKey(tenantID, axisID)).Err()
		return nil, false, nil
	}

	return segments, true, nil
}

// SetAxisSegments implements SegmentCache
func (c *RedisSegmentCache) SetAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID, segments []classification.Segment) error {
	data, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("failed to marshal segments: %w", err)
	}

	if err := c.client.Set(ctx, axisCacheKey(tenantID, axisID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write segment cache: %w", err)
	}
	return nil
}

// InvalidateAxis implements SegmentCache
func (c *RedisSegmentCache) InvalidateAxis(ctx context.Context, tenantID, axisID uuid.UUID) error {
	if err := c.client.Del(ctx, axisCacheKey(tenantID, axisID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate segment cache: %w", err)
	}
	return nil
}

// Close implements SegmentCache
func (c *RedisSegmentCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisSegmentCache implements SegmentCache
var _ SegmentCache = (*RedisSegmentCache)(nil)
