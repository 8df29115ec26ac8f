package admin

import (
	"sync"
	"time"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// statsCache holds at most one statistics snapshot. Every invalidation
// bumps the generation; a result computed under an older generation is
// never stored.
type statsCache struct {
	ttl time.Duration

	mu         sync.Mutex
	generation uint64
	snapshot   *domain.AdminStats
	expiresAt  time.Time
}

func newStatsCache(ttl time.Duration) *statsCache {
	return &statsCache{ttl: ttl}
}

// get returns the snapshot if one is present and fresh at now.
func (c *statsCache) get(now time.Time) (domain.AdminStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil || !now.Before(c.expiresAt) {
		return domain.AdminStats{}, false
	}
	return *c.snapshot, true
}

// currentGeneration returns the generation a computation starts under.
func (c *statsCache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// store saves st if no invalidation happened since gen was read.
// It reports whether the snapshot was kept.
func (c *statsCache) store(st domain.AdminStats, gen uint64, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}
	c.snapshot = &st
	c.expiresAt = now.Add(c.ttl)
	return true
}

// invalidate drops the snapshot and supersedes in-flight computations.
func (c *statsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.snapshot = nil
}
