package models

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// listKey is the single cache key for the reported model list.
const listKey = "list-models"

// ListCache memoizes the model list the agent reports, sparing a
// subprocess round-trip for a list that changes rarely.
type ListCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewListCache creates a cache whose entries expire after ttl.
func NewListCache(ttl time.Duration) *ListCache {
	return &ListCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Get returns the cached model list, or false when the entry is missing
// or expired.
func (c *ListCache) Get() ([]string, bool) {
	value, found := c.cache.Get(listKey)
	if !found {
		return nil, false
	}

	cached, ok := value.([]string)
	if !ok {
		return nil, false
	}

	out := make([]string, len(cached))
	copy(out, cached)

	return out, true
}

// Put stores a copy of the model list until the TTL elapses.
func (c *ListCache) Put(list []string) {
	stored := make([]string, len(list))
	copy(stored, list)

	c.cache.Set(listKey, stored, c.ttl)
}

// Flush drops the cached list immediately.
func (c *ListCache) Flush() {
	c.cache.Flush()
}
