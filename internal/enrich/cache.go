package enrich

import (
	"strings"
	"sync"
	"time"
)

// Cache holds TMDB lookup results keyed by normalized title, with a TTL so
// long-running deployments pick up corrected metadata eventually. A run
// that sees the same double-feature title at two venues makes one call.
type Cache struct {
	mu       sync.Mutex
	results  map[string]*Result
	cachedAt map[string]time.Time
	ttl      time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		results:  make(map[string]*Result),
		cachedAt: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Get retrieves a cached result, or nil if absent or expired.
func (c *Cache) Get(title, year string) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(title, year)
	result, exists := c.results[key]
	if !exists {
		return nil
	}

	if time.Since(c.cachedAt[key]) > c.ttl {
		delete(c.results, key)
		delete(c.cachedAt, key)
		return nil
	}

	return result
}

// Set stores a lookup result.
func (c *Cache) Set(title, year string, result *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(title, year)
	c.results[key] = result
	c.cachedAt[key] = time.Now()
}

// cacheKey includes the year hint: the same title with different release
// years legitimately resolves to different films.
func cacheKey(title, year string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + year
}
