package cache

import (
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key renders an ordered key tuple, e.g. Key("products", brand, category).
// Equivalent queries must render identical keys to share an entry.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

type entry struct {
	value     interface{}
	fetchedAt time.Time
}

// Cache is a keyed read-through cache. Concurrent fetches for the same key
// are coalesced into one call; a value older than the TTL is served as-is
// while a background refresh runs. Errors are never cached.
type Cache struct {
	ttl     time.Duration
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Fetch returns the value held under key, calling fn when nothing is held.
// A stale hit returns immediately and revalidates in the background.
func (c *Cache) Fetch(key string, fn func() (interface{}, error)) (interface{}, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if time.Since(e.fetchedAt) > c.ttl {
			go c.refresh(key, fn)
		}
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.put(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Cache) refresh(key string, fn func() (interface{}, error)) {
	_, err, _ := c.group.Do(key, func() (interface{}, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.put(key, v)
		return v, nil
	})
	if err != nil {
		// Keep serving the stale value; the next stale read retries.
		log.Printf("cache: refresh of %q failed: %v", key, err)
	}
}

func (c *Cache) put(key string, v interface{}) {
	c.mu.Lock()
	c.entries[key] = entry{value: v, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// Invalidate drops the given keys so the next read re-fetches.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.mu.Unlock()
}
