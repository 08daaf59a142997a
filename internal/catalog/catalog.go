// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/rand"
	"sort"
	"strconv"
)

// ErrEmptyCatalog is returned when a catalog, or anything derived from one,
// would contain zero items.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Catalog is an ordered, immutable sequence of items.
type Catalog struct {
	items       []Item
	firstByKey  map[string]int
	titles      *TitleIndex
	genres      []string
	fingerprint string
}

// Option configures catalog construction.
type Option func(*options)

type options struct {
	posterBaseURL string
}

// WithPosterBaseURL sets the host poster paths are resolved against.
// An empty base leaves PosterURL equal to PosterPath.
func WithPosterBaseURL(base string) Option {
	return func(o *options) {
		o.posterBaseURL = base
	}
}

// New builds a catalog from items in the given order. Item IDs are reassigned
// to their positions and missing formatted runtimes are derived.
func New(items []Item, opts ...Option) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	o := options{posterBaseURL: DefaultPosterBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	firstByKey := make(map[string]int, len(owned))
	genreSet := make(map[string]struct{})
	for i := range owned {
		it := &owned[i]
		it.ID = i
		if it.Runtime == "" {
			it.Runtime = FormatRuntime(it.RuntimeMinutes)
		}
		it.PosterURL = resolvePosterURL(o.posterBaseURL, it.PosterPath)

		// First occurrence wins for duplicate titles.
		if _, seen := firstByKey[it.Title]; !seen {
			firstByKey[it.Title] = i
		}
		if it.Genres != "" {
			genreSet[it.Genres] = struct{}{}
		}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	c := &Catalog{
		items:      owned,
		firstByKey: firstByKey,
		genres:     genres,
	}
	c.titles = newTitleIndex(owned)
	c.fingerprint = fingerprint(owned)
	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at position i.
func (c *Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IndexOf resolves a title to the position of its first occurrence.
func (c *Catalog) IndexOf(title string) (int, bool) {
	i, ok := c.firstByKey[title]
	return i, ok
}

// Lookup returns the first item with the given title.
func (c *Catalog) Lookup(title string) (Item, bool) {
	i, ok := c.IndexOf(title)
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Genres returns the distinct raw genre values, sorted.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

// ByGenre returns the items whose raw genre value equals genre, in catalog order.
func (c *Catalog) ByGenre(genre string) []Item {
	var out []Item
	for i := range c.items {
		if c.items[i].Genres == genre {
			out = append(out, c.items[i])
		}
	}
	return out
}

// Sample returns up to n distinct items chosen uniformly at random.
// The same seed always yields the same sample for a given catalog.
func (c *Catalog) Sample(n int, seed int64) []Item {
	if n <= 0 {
		return []Item{}
	}
	if n > len(c.items) {
		n = len(c.items)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // sampling for display, not security
	perm := rng.Perm(len(c.items))

	out := make([]Item, n)
	for i := 0; i < n; i++ {
		out[i] = c.items[perm[i]]
	}
	return out
}

// Titles returns the title autocomplete index.
func (c *Catalog) Titles() *TitleIndex {
	return c.titles
}

// Fingerprint identifies the catalog contents. Two catalogs with the same
// items in the same order share a fingerprint.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func fingerprint(items []Item) string {
	h := sha256.New()
	var buf []byte
	for i := range items {
		buf = buf[:0]
		buf = append(buf, items[i].Title...)
		buf = append(buf, 0)
		buf = append(buf, items[i].Genres...)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, int64(items[i].RuntimeMinutes), 10)
		buf = append(buf, '\n')
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
