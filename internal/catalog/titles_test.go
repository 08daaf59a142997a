// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"sync"
	"testing"
)

func titleCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := New([]Item{
		{Title: "The Matrix", Genres: "Action", RuntimeMinutes: 136},
		{Title: "The Matrix Reloaded", Genres: "Action", RuntimeMinutes: 138},
		{Title: "Theodora", Genres: "Drama", RuntimeMinutes: 100},
		{Title: "the matrix", Genres: "Comedy", RuntimeMinutes: 90},
		{Title: "The Matrix", Genres: "Drama", RuntimeMinutes: 80},
		{Title: "Amélie", Genres: "Comedy", RuntimeMinutes: 122},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestTitleIndex_Len(t *testing.T) {
	t.Parallel()

	idx := titleCatalog(t).Titles()
	// "The Matrix" appears twice; only distinct titles are indexed.
	if idx.Len() != 5 {
		t.Errorf("Len() = %d, want 5", idx.Len())
	}
}

func TestTitleIndex_Suggest(t *testing.T) {
	t.Parallel()

	idx := titleCatalog(t).Titles()

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []TitleMatch
	}{
		{
			name:   "case insensitive prefix",
			prefix: "THE MAT",
			want: []TitleMatch{
				{Title: "The Matrix", Index: 0},
				{Title: "The Matrix Reloaded", Index: 1},
				{Title: "the matrix", Index: 3},
			},
		},
		{
			name:   "limit",
			prefix: "the",
			limit:  2,
			want: []TitleMatch{
				{Title: "The Matrix", Index: 0},
				{Title: "The Matrix Reloaded", Index: 1},
			},
		},
		{
			name:   "unicode",
			prefix: "amé",
			want:   []TitleMatch{{Title: "Amélie", Index: 5}},
		},
		{
			name:   "no match",
			prefix: "zzz",
			want:   []TitleMatch{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Suggest(tt.prefix, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Suggest(%q) = %+v, want %+v", tt.prefix, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Suggest(%q)[%d] = %+v, want %+v", tt.prefix, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTitleIndex_DefaultLimit(t *testing.T) {
	t.Parallel()

	items := make([]Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, Item{Title: "Movie " + string(rune('A'+i)), Genres: "Drama", RuntimeMinutes: 90})
	}
	c, err := New(items)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := c.Titles().Suggest("movie", 0); len(got) != DefaultSuggestionLimit {
		t.Errorf("len(Suggest) = %d, want %d", len(got), DefaultSuggestionLimit)
	}
}

func TestTitleIndex_Concurrent(t *testing.T) {
	t.Parallel()

	idx := titleCatalog(t).Titles()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := idx.Suggest("the", 10); len(got) != 4 {
					t.Errorf("len(Suggest) = %d, want 4", len(got))
					return
				}
			}
		}()
	}
	wg.Wait()
}
