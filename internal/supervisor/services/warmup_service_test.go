// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/recommend"
)

// mockRecommender records the titles it was asked about.
type mockRecommender struct {
	mu     sync.Mutex
	calls  []recommend.Request
	failOn map[string]bool
	block  bool
}

func (m *mockRecommender) RecommendScored(ctx context.Context, req recommend.Request) (*recommend.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.failOn[req.Title] {
		return nil, recommend.ErrNotFound
	}
	return &recommend.Response{}, nil
}

func (m *mockRecommender) titles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	for i, c := range m.calls {
		out[i] = c.Title
	}
	return out
}

func newWarmupCatalogService(t *testing.T) *recommend.Service {
	t.Helper()

	cat, err := catalog.New([]catalog.Item{
		{Title: "Heat", Genres: "Action|Crime", RuntimeMinutes: 170},
		{Title: "Alien", Genres: "Horror", RuntimeMinutes: 117},
		{Title: "Heat", Genres: "Horror", RuntimeMinutes: 60},
		{Title: "Up", Genres: "Animation", RuntimeMinutes: 96},
		{Title: "Aliens", Genres: "Horror", RuntimeMinutes: 137},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	svc, err := recommend.New(cat, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.New() error = %v", err)
	}
	return svc
}

func TestWarmupTitles(t *testing.T) {
	t.Parallel()

	svc := newWarmupCatalogService(t)

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "disabled", limit: 0, want: nil},
		{name: "skips duplicate titles", limit: 3, want: []string{"Heat", "Alien", "Up"}},
		{name: "limit above distinct count", limit: 50, want: []string{"Heat", "Alien", "Up", "Aliens"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := WarmupTitles(svc, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("WarmupTitles(%d) = %v, want %v", tt.limit, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("WarmupTitles(%d)[%d] = %q, want %q", tt.limit, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWarmupService_String(t *testing.T) {
	t.Parallel()

	svc := NewWarmupService(&mockRecommender{}, WarmupServiceConfig{}, zerolog.Nop())
	if got := svc.String(); got != "cache-warmup" {
		t.Errorf("String() = %q, want %q", got, "cache-warmup")
	}
}

func TestWarmupService_WarmsEveryTitleOnce(t *testing.T) {
	t.Parallel()

	rec := &mockRecommender{failOn: map[string]bool{"Gone": true}}
	svc := NewWarmupService(rec, WarmupServiceConfig{
		Titles: []string{"Heat", "Gone", "Up"},
		N:      4,
	}, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() error = %v, want ErrDoNotRestart", err)
	}

	got := rec.titles()
	want := []string{"Heat", "Gone", "Up"}
	if len(got) != len(want) {
		t.Fatalf("warmed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
	for _, c := range rec.calls {
		if c.N != 4 {
			t.Errorf("request for %q used n=%d, want 4", c.Title, c.N)
		}
	}
}

func TestWarmupService_StopsOnCancel(t *testing.T) {
	t.Parallel()

	rec := &mockRecommender{}
	svc := NewWarmupService(rec, WarmupServiceConfig{Titles: []string{"Heat", "Up"}}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
	if n := len(rec.titles()); n != 0 {
		t.Errorf("warmed %d titles after cancel, want 0", n)
	}
}

func TestWarmupService_ItemTimeout(t *testing.T) {
	t.Parallel()

	rec := &mockRecommender{block: true}
	svc := NewWarmupService(rec, WarmupServiceConfig{
		Titles:      []string{"Heat"},
		ItemTimeout: 10 * time.Millisecond,
	}, zerolog.Nop())

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() error = %v, want ErrDoNotRestart after item timeout", err)
	}
}

func TestWarmupService_FillsCache(t *testing.T) {
	t.Parallel()

	store := &countingStore{data: make(map[string][]byte)}
	cached := recommend.NewCached(newWarmupCatalogService(t), store, zerolog.Nop())

	svc := NewWarmupService(cached, WarmupServiceConfig{
		Titles: WarmupTitles(cached.Service(), 10),
	}, zerolog.Nop())
	_ = svc.Serve(context.Background())

	if got := store.len(); got != 4 {
		t.Errorf("cache holds %d entries, want 4", got)
	}
}

type countingStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *countingStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *countingStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *countingStore) Name() string { return "counting" }

func (s *countingStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
