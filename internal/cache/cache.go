// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache provides a small in-memory TTL cache used to avoid
// re-querying upstream APIs for repeated searches within a session.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value   T
	expires time.Time
}

// Cache is a thread-safe map with per-cache expiry. A TTL of zero or
// less disables caching entirely: Get always misses and Set is a no-op.
type Cache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry[T]

	now func() time.Time // overridable in tests
}

// New returns a cache whose entries expire after ttl.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:   ttl,
		items: make(map[string]entry[T]),
		now:   time.Now,
	}
}

// Get returns the cached value for key and whether it was present and
// unexpired. Expired entries are removed on access.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if c.ttl <= 0 {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if c.now().After(e.expires) {
		delete(c.items, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's TTL.
func (c *Cache[T]) Set(key string, value T) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[T]{value: value, expires: c.now().Add(c.ttl)}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
