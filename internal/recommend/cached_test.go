// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type mapStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	gets    int
	setKeys []string
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (m *mapStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *mapStore) Name() string { return "map" }

func TestCachedService_HitAfterMiss(t *testing.T) {
	t.Parallel()

	store := newMapStore()
	cached := NewCached(newTestService(t, abcCatalog(), nil), store, zerolog.Nop())

	first, err := cached.RecommendScored(context.Background(), Request{Title: "A", N: 2, RequestID: "one"})
	if err != nil {
		t.Fatalf("RecommendScored() error = %v", err)
	}
	if first.Metadata.CacheHit {
		t.Error("first response marked as cache hit")
	}

	second, err := cached.RecommendScored(context.Background(), Request{Title: "A", N: 2, RequestID: "two"})
	if err != nil {
		t.Fatalf("RecommendScored() error = %v", err)
	}
	if !second.Metadata.CacheHit {
		t.Error("second response not served from cache")
	}
	if second.Metadata.RequestID != "two" {
		t.Errorf("RequestID = %q, want two", second.Metadata.RequestID)
	}
	if len(second.Items) != len(first.Items) {
		t.Fatalf("cached items = %d, want %d", len(second.Items), len(first.Items))
	}
	for i := range first.Items {
		if first.Items[i].Item.ID != second.Items[i].Item.ID || first.Items[i].Distance != second.Items[i].Distance {
			t.Errorf("cached item %d = %+v, want %+v", i, second.Items[i], first.Items[i])
		}
	}
	if len(store.setKeys) != 1 {
		t.Errorf("store written %d times, want 1", len(store.setKeys))
	}
}

func TestCachedService_KeyUsesPreparedN(t *testing.T) {
	t.Parallel()

	store := newMapStore()
	svc := newTestService(t, abcCatalog(), nil)
	cached := NewCached(svc, store, zerolog.Nop())

	if _, err := cached.RecommendScored(context.Background(), Request{Title: "B"}); err != nil {
		t.Fatalf("RecommendScored() error = %v", err)
	}
	want := svc.CacheKey("B", svc.Config().DefaultN)
	if len(store.setKeys) != 1 || store.setKeys[0] != want {
		t.Errorf("keys = %v, want [%s]", store.setKeys, want)
	}
	if !strings.Contains(want, svc.Catalog().Fingerprint()) {
		t.Errorf("key %q does not include the catalog fingerprint", want)
	}
}

func TestCachedService_StoreFailuresDegrade(t *testing.T) {
	t.Parallel()

	store := newMapStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	cached := NewCached(newTestService(t, abcCatalog(), nil), store, zerolog.Nop())

	resp, err := cached.RecommendScored(context.Background(), Request{Title: "A", N: 1})
	if err != nil {
		t.Fatalf("RecommendScored() error = %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Item.Title != "B" {
		t.Errorf("RecommendScored() items = %+v, want [B]", resp.Items)
	}
}

func TestCachedService_CorruptEntry(t *testing.T) {
	t.Parallel()

	store := newMapStore()
	svc := newTestService(t, abcCatalog(), nil)
	store.data[svc.CacheKey("A", 1)] = []byte("{not json")
	cached := NewCached(svc, store, zerolog.Nop())

	resp, err := cached.RecommendScored(context.Background(), Request{Title: "A", N: 1})
	if err != nil {
		t.Fatalf("RecommendScored() error = %v", err)
	}
	if resp.Metadata.CacheHit {
		t.Error("corrupt entry served as a hit")
	}
}

func TestCachedService_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	store := newMapStore()
	cached := NewCached(newTestService(t, abcCatalog(), nil), store, zerolog.Nop())

	if _, err := cached.RecommendScored(context.Background(), Request{Title: "nope", N: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RecommendScored() error = %v, want ErrNotFound", err)
	}
	if len(store.setKeys) != 0 {
		t.Errorf("error response was cached: %v", store.setKeys)
	}
}

func TestCachedService_CountsHits(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, abcCatalog(), nil)
	cached := NewCached(svc, newMapStore(), zerolog.Nop())

	for range 3 {
		if _, err := svc.RecommendScored(context.Background(), Request{Title: "A", N: 1}); err != nil {
			t.Fatalf("RecommendScored() error = %v", err)
		}
	}
	for range 3 {
		if _, err := cached.RecommendScored(context.Background(), Request{Title: "A", N: 1}); err != nil {
			t.Fatalf("cached RecommendScored() error = %v", err)
		}
	}

	st := svc.Stats()
	if st.RequestCount != 6 || st.CacheHitCount != 2 {
		t.Errorf("Stats() requests=%d hits=%d, want 6 and 2", st.RequestCount, st.CacheHitCount)
	}
}

func TestCachedService_ClampedOnHit(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DefaultN = 1
	cfg.MaxN = 1
	cached := NewCached(newTestService(t, abcCatalog(), cfg), newMapStore(), zerolog.Nop())

	tests := []struct {
		name        string
		n           int
		wantClamped bool
	}{
		{name: "within max", n: 1, wantClamped: false},
		{name: "capped by max", n: 5, wantClamped: true},
		{name: "within max again", n: 1, wantClamped: false},
	}

	// Subtests share one cache entry and run in order.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := cached.RecommendScored(context.Background(), Request{Title: "A", N: tt.n})
			if err != nil {
				t.Fatalf("RecommendScored() error = %v", err)
			}
			if resp.Metadata.Clamped != tt.wantClamped {
				t.Errorf("Clamped = %v, want %v", resp.Metadata.Clamped, tt.wantClamped)
			}
		})
	}
}
