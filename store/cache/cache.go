// Package cache provides a small TTL cache used by the store to avoid
// re-reading hot rows on every console command.
package cache

import (
	"sync"
	"time"
)

// Config holds cache settings.
type Config[K comparable, V any] struct {
	// DefaultTTL is the lifetime of an entry.
	DefaultTTL time.Duration
	// CleanupInterval is how often expired entries are swept.
	CleanupInterval time.Duration
	// MaxItems caps the number of entries; writes are rejected at capacity.
	MaxItems int
	// OnEviction is called for entries removed by the sweeper, if set.
	OnEviction func(key K, value V)
}

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL cache with periodic cleanup.
type Cache[K comparable, V any] struct {
	config Config[K, V]
	items  map[K]item[V]
	mu     sync.RWMutex
	done   chan struct{}
	once   sync.Once
}

// New creates a cache and starts its cleanup goroutine.
func New[K comparable, V any](config Config[K, V]) *Cache[K, V] {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = 10 * time.Minute
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	if config.MaxItems <= 0 {
		config.MaxItems = 1000
	}

	c := &Cache[K, V]{
		config: config,
		items:  make(map[K]item[V]),
		done:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a value from the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(it.expiresAt) {
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores a value with the default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok && len(c.items) >= c.config.MaxItems {
		return
	}
	c.items[key] = item[V]{value: value, expiresAt: time.Now().Add(c.config.DefaultTTL)}
}

// Delete removes a key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Close stops the cleanup goroutine.
func (c *Cache[K, V]) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Cache[K, V]) cleanupLoop() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, it := range c.items {
				if now.After(it.expiresAt) {
					delete(c.items, key)
					if c.config.OnEviction != nil {
						c.config.OnEviction(key, it.value)
					}
				}
			}
			c.mu.Unlock()
		}
	}
}
