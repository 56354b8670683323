// Package rulecache remembers the last scanned rules of each watched
// stylesheet, keyed by content hash, so the dev server only rebroadcasts
// files whose rules actually changed.
package rulecache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/recera/restyle/internal/cssscan"
)

// Cache maps stylesheet paths to their last seen content hash and rules.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	stats   Stats
}

type entry struct {
	hash  string
	rules []cssscan.Rule
}

// Stats tracks cache effectiveness.
type Stats struct {
	Hits   int64
	Misses int64
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Update scans content and stores it under path. It returns the scanned
// rules and whether they differ from the previous content of path; unchanged
// content reports changed=false and counts as a hit.
func (c *Cache) Update(path string, content []byte) (rules []cssscan.Rule, changed bool) {
	hash := hashContent(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok && e.hash == hash {
		c.stats.Hits++
		return e.rules, false
	}
	c.stats.Misses++

	rules = cssscan.Scan(string(content))
	c.entries[path] = &entry{hash: hash, rules: rules}
	return rules, true
}

// Invalidate drops the entry for path. The next Update always reports a
// change.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Rules returns the last scanned rules for path.
func (c *Cache) Rules(path string) ([]cssscan.Rule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	return e.rules, true
}

// Len returns the number of tracked files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache statistics.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
