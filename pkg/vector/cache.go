package vector

import (
	"sync"
	"time"
)

// countEntry holds a cached per-agent count with a timestamp for TTL expiry.
type countEntry struct {
	count     int
	fetchedAt time.Time
}

// countCache is a thread-safe per-agent count cache with TTL expiration.
// Expired entries are cleaned up lazily on Get; there is no background
// goroutine. Upserts and deletes invalidate eagerly so the orchestrator's
// skip-retrieval check eventually reflects deletions.
type countCache struct {
	mu      sync.RWMutex
	entries map[string]*countEntry
	ttl     time.Duration
}

func newCountCache(ttl time.Duration) *countCache {
	return &countCache{
		entries: make(map[string]*countEntry),
		ttl:     ttl,
	}
}

// Get returns the cached count if present and not expired.
func (c *countCache) Get(agentID string) (int, bool) {
	c.mu.RLock()
	entry, ok := c.entries[agentID]
	c.mu.RUnlock()

	if !ok {
		return 0, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Re-check under write lock: a concurrent Set may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[agentID]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, agentID)
		}
		c.mu.Unlock()
		return 0, false
	}

	return entry.count, true
}

// Set stores a count with the current timestamp.
func (c *countCache) Set(agentID string, count int) {
	c.mu.Lock()
	c.entries[agentID] = &countEntry{count: count, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// Invalidate drops the entry for one agent.
func (c *countCache) Invalidate(agentID string) {
	c.mu.Lock()
	delete(c.entries, agentID)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *countCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*countEntry)
	c.mu.Unlock()
}
