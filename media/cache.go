package media

import (
	"context"
	"fmt"
	"sync"
)

// Cache is a write-through clip cache. Hits are served from memory;
// misses fall through to the backing Store when one is configured. A nil
// store yields a memory-only cache that lives for the process lifetime.
// All methods are safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	store Store
	clips map[string][]byte
}

// NewCache creates a Cache over the given Store. A nil store is valid
// and disables disk persistence.
func NewCache(store Store) *Cache {
	return &Cache{
		store: store,
		clips: make(map[string][]byte),
	}
}

// Get returns the clip for key, reporting whether it was found in memory
// or in the backing store.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.clips[key]
	c.mu.RUnlock()
	if ok {
		return data, true
	}

	if c.store == nil {
		return nil, false
	}

	entries, err := c.store.Load(ctx, key)
	if err != nil || len(entries) == 0 {
		return nil, false
	}

	c.mu.Lock()
	c.clips[key] = entries[0].Value
	c.mu.Unlock()

	return entries[0].Value, true
}

// Put stores the clip under key, writing through to the backing store
// when one is configured.
func (c *Cache) Put(ctx context.Context, key string, data []byte) error {
	c.mu.Lock()
	c.clips[key] = data
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if err := c.store.Save(ctx, Entry{Key: key, Value: data}); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Prune discards every cached clip, in memory and in the backing store.
func (c *Cache) Prune(ctx context.Context) error {
	c.mu.Lock()
	c.clips = make(map[string][]byte)
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}

	keys, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("cache prune: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("cache prune: %w", err)
	}
	return nil
}
