// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxEntries bounds the memory backend when no size is configured.
const DefaultMaxEntries = 10000

// Memory is an in-process LRU whose entries also expire after a TTL.
// Values are copied on the way in and out.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

var _ Store = (*Memory)(nil)

// NewMemory creates a memory store. A non-positive ttl disables expiry.
func NewMemory(maxEntries int, ttl time.Duration) (*Memory, error) {
	if maxEntries < 0 {
		return nil, fmt.Errorf("max entries must be non-negative, got %d", maxEntries)
	}
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Memory{lru: expirable.NewLRU[string, []byte](maxEntries, nil, ttl)}, nil
}

// Get returns a copy of the stored value.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

// Set stores a copy of value.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.lru.Add(key, clone(value))
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	return m.lru.Len()
}

// Name returns "memory".
func (m *Memory) Name() string { return string(BackendMemory) }

// Close purges the cache.
func (m *Memory) Close() error {
	m.lru.Purge()
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
