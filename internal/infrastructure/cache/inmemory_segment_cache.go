package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
)

type memoryEntry struct {
	segments  []classification.Segment
	expiresAt time.Time
}

// InMemorySegmentCache implements SegmentCache with a process-local map.
// Suitable for single-instance deployments and tests; entries are not shared
// across processes.
type InMemorySegmentCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewInMemorySegmentCache creates a new in-memory segment cache
func NewInMemorySegmentCache(ttl time.Duration) *InMemorySegmentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InMemorySegmentCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// GetAxisSegments implements SegmentCache
func (c *InMemorySegmentCache) GetAxisSegments(_ context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[axisCacheKey(tenantID, axisID)]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, axisCacheKey(tenantID, axisID))
		c.mu.Unlock()
		return nil, false, nil
	}

	// Copy so callers cannot mutate the cached slice
	segments := make([]classification.Segment, len(entry.segments))
	copy(segments, entry.segments)
	return segments, true, nil
}

// SetAxisSegments implements SegmentCache
func (c *InMemorySegmentCache) SetAxisSegments(_ context.Context, tenantID, axisID uuid.UUID, segments []classification.Segment) error {
	stored := make([]classification.Segment, len(segments))
	copy(stored, segments)

	c.mu.Lock()
	c.entries[axisCacheKey(tenantID, axisID)] = memoryEntry{
		segments:  stored,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
	return nil
}

// InvalidateAxis implements SegmentCache
func (c *InMemorySegmentCache) InvalidateAxis(_ context.Context, tenantID, axisID uuid.UUID) error {
	c.mu.Lock()
	delete(c.entries, axisCacheKey(tenantID, axisID))
	c.mu.Unlock()
	return nil
}

// Close implements SegmentCache
func (c *InMemorySegmentCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

// Ensure InMemorySegmentCache implements SegmentCache
var _ SegmentCache = (*InMemorySegmentCache)(nil)
