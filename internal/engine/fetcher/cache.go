package fetcher

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds fetch results for the lifetime of a process. A failed fetch is
// remembered as well, so a URL is attempted at most once per process.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry

	requestGroup singleflight.Group
}

type cacheEntry struct {
	content string
	ok      bool
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the stored result for url. found is false when url was never resolved.
func (c *Cache) Get(url string) (content string, ok, found bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, found := c.entries[url]
	return e.content, e.ok, found
}

// Resolve returns the stored result for url, calling load at most once per URL.
// Concurrent callers for the same URL share a single load.
// hit reports whether the result came from an earlier resolution.
func (c *Cache) Resolve(url string, load func() (string, bool)) (content string, ok, hit bool) {
	if content, ok, found := c.Get(url); found {
		return content, ok, true
	}

	v, _, _ := c.requestGroup.Do(url, func() (any, error) {
		// A load may have finished between Get and Do.
		if content, ok, found := c.Get(url); found {
			return cacheEntry{content: content, ok: ok}, nil
		}

		content, ok := load()
		entry := cacheEntry{content: content, ok: ok}

		c.mu.Lock()
		c.entries[url] = entry
		c.mu.Unlock()
		return entry, nil
	})

	entry := v.(cacheEntry) //nolint:errcheck,forcetypeassert // Do only returns cacheEntry
	return entry.content, entry.ok, false
}
