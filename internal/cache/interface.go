// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("cache store closed")

// Store is a byte-oriented key/value cache with a per-store TTL.
//
// Get reports a miss as (nil, false, nil); an error means the backend could
// not answer and callers should fall back to computing the value.
type Store interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the store's TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Name identifies the backend in logs and metrics.
	Name() string

	// Close releases the backend's resources.
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	// BackendNone disables response caching.
	BackendNone Backend = "none"

	// BackendMemory is an in-process expiring LRU.
	BackendMemory Backend = "memory"

	// BackendRedis is a shared Redis server.
	BackendRedis Backend = "redis"

	// BackendBadger is an embedded BadgerDB directory.
	BackendBadger Backend = "badger"
)

// Config selects and configures a backend.
type Config struct {
	Backend    Backend
	TTL        time.Duration
	MaxEntries int
	Redis      RedisConfig
	Badger     BadgerConfig
}
