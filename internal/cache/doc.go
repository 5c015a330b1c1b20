// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package cache provides a thread-safe, generic LRU cache with TTL expiry.

It backs the preview session registry: sessions idle longer than the TTL
expire lazily on access or in a periodic sweep, and the least recently
used session is evicted when the registry is full. An eviction callback
lets owners release per-entry resources such as a session's recompute
worker.

	sessions := cache.NewLRU[*Entry](1000, 30*time.Minute)
	sessions.OnEvict(func(id string, e *Entry, reason cache.EvictReason) {
	    e.Close()
	})

All operations are O(1) except CleanupExpired and Keys, which walk the list.
Callbacks run after the cache lock is released and may call back into the
cache.
*/
package cache
