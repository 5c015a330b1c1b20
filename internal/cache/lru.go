// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

package cache

import (
	"sync"
	"time"
)

// Defaults applied by NewLRU for non-positive arguments.
const (
	DefaultCapacity = 10000
	DefaultTTL      = 5 * time.Minute
)

// EvictReason says why an entry left the cache.
type EvictReason string

const (
	EvictCapacity EvictReason = "capacity"
	EvictExpired  EvictReason = "expired"
	EvictRemoved  EvictReason = "removed"
)

type entry[V any] struct {
	key       string
	value     V
	prev      *entry[V]
	next      *entry[V]
	expiresAt time.Time
}

// evicted is collected under the lock and reported after it is released.
type evicted[V any] struct {
	key    string
	value  V
	reason EvictReason
}

// LRU is a Least Recently Used cache with a sliding TTL: every Get or Add
// extends an entry's lifetime. A doubly linked list orders entries and a
// map indexes them; head.next is the most recent.
type LRU[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time
	onEvict  func(key string, value V, reason EvictReason)

	items map[string]*entry[V]
	head  *entry[V]
	tail  *entry[V]

	hits      int64
	misses    int64
	evictions int64
}

// NewLRU creates a cache holding at most capacity entries for ttl each.
func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*entry[V]),
		head:     &entry[V]{},
		tail:     &entry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// OnEvict registers fn to be called for every entry that leaves the cache
// other than by Clear.
func (c *LRU[V]) OnEvict(fn func(key string, value V, reason EvictReason)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// WithClock replaces the time source. Intended for tests.
func (c *LRU[V]) WithClock(now func() time.Time) *LRU[V] {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	var zero V
	c.mu.Lock()
	e, ok := c.items[key]
	if !ok {
		c.misses++
		c.mu.Unlock()
		return zero, false
	}
	now := c.now()
	if now.After(e.expiresAt) {
		c.removeEntry(e)
		c.misses++
		c.evictions++
		fn := c.onEvict
		c.mu.Unlock()
		c.notify(fn, []evicted[V]{{e.key, e.value, EvictExpired}})
		return zero, false
	}
	e.expiresAt = now.Add(c.ttl)
	c.moveToFront(e)
	c.hits++
	v := e.value
	c.mu.Unlock()
	return v, true
}

// Peek returns the value for key without touching recency or expiry.
func (c *LRU[V]) Peek(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok && !c.now().After(e.expiresAt) {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present and unexpired.
func (c *LRU[V]) Contains(key string) bool {
	_, ok := c.Peek(key)
	return ok
}

// Add inserts or replaces key. Replacing does not fire the eviction
// callback for the old value. Returns true when a new entry was created.
func (c *LRU[V]) Add(key string, value V) bool {
	c.mu.Lock()
	expiresAt := c.now().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		c.mu.Unlock()
		return false
	}

	e := &entry[V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	var out []evicted[V]
	for len(c.items) > c.capacity {
		oldest := c.tail.prev
		c.removeEntry(oldest)
		c.evictions++
		out = append(out, evicted[V]{oldest.key, oldest.value, EvictCapacity})
	}
	fn := c.onEvict
	c.mu.Unlock()
	c.notify(fn, out)
	return true
}

// Remove deletes key. Returns true if it was present.
func (c *LRU[V]) Remove(key string) bool {
	c.mu.Lock()
	e, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return false
	}
	c.removeEntry(e)
	fn := c.onEvict
	c.mu.Unlock()
	c.notify(fn, []evicted[V]{{e.key, e.value, EvictRemoved}})
	return true
}

// Len returns the number of entries, including expired ones not yet swept.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns unexpired keys from most to least recently used.
func (c *LRU[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	keys := make([]string, 0, len(c.items))
	for e := c.head.next; e != c.tail; e = e.next {
		if !now.After(e.expiresAt) {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Clear drops every entry without invoking the eviction callback and
// returns the dropped values.
func (c *LRU[V]) Clear() []V {
	c.mu.Lock()
	defer c.mu.Unlock()
	values := make([]V, 0, len(c.items))
	for e := c.head.next; e != c.tail; e = e.next {
		values = append(values, e.value)
	}
	c.items = make(map[string]*entry[V])
	c.head.next = c.tail
	c.tail.prev = c.head
	return values
}

// CleanupExpired removes expired entries, oldest first, and returns how
// many were removed.
func (c *LRU[V]) CleanupExpired() int {
	c.mu.Lock()
	now := c.now()
	var out []evicted[V]
	for e := c.tail.prev; e != c.head; {
		prev := e.prev
		if now.After(e.expiresAt) {
			c.removeEntry(e)
			c.evictions++
			out = append(out, evicted[V]{e.key, e.value, EvictExpired})
		}
		e = prev
	}
	fn := c.onEvict
	c.mu.Unlock()
	c.notify(fn, out)
	return len(out)
}

// Stats returns hit, miss, and eviction counts plus the current size.
func (c *LRU[V]) Stats() (hits, misses, evictions int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.evictions, len(c.items)
}

func (c *LRU[V]) notify(fn func(string, V, EvictReason), out []evicted[V]) {
	if fn == nil {
		return
	}
	for _, ev := range out {
		fn(ev.key, ev.value, ev.reason)
	}
}

// List helpers; callers hold c.mu.

func (c *LRU[V]) addToFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRU[V]) moveToFront(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRU[V]) removeEntry(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}
