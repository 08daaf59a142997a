// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package cache provides the response cache backends.
//
// Every backend implements Store, a byte-oriented key/value interface with a
// fixed TTL. Values are opaque; the recommend package encodes responses as
// JSON before storing them.
//
// # Backends
//
//   - Memory: expiring LRU from hashicorp/golang-lru, per process
//   - Redis: shared across replicas, guarded by a circuit breaker
//   - Badger: embedded on-disk store that survives restarts
//
// Open selects a backend from Config and wraps it with Instrument, which
// records hit, miss and error counters per backend.
//
// # Failure Handling
//
// A Store error never fails a request. Callers log it and compute the value
// directly. The Redis backend trips its breaker after consecutive failures,
// after which calls fail fast until the open timeout elapses.
//
// # Usage
//
//	import "github.com/tomtom215/marquee/internal/cache"
//
//	store, err := cache.Open(ctx, cache.Config{
//	    Backend:    cache.BackendMemory,
//	    TTL:        10 * time.Minute,
//	    MaxEntries: 5000,
//	}, logger)
package cache
