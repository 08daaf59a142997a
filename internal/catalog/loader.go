// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedRow is returned when a source row cannot be turned into an Item.
var ErrMalformedRow = errors.New("malformed catalog row")

// ErrMissingColumn is returned when a required column is absent from the source.
var ErrMissingColumn = errors.New("missing catalog column")

// Columns names the source columns each Item field is read from.
// Title, Genres and Runtime are required; the rest are optional.
type Columns struct {
	Title      string `koanf:"title" json:"title"`
	Genres     string `koanf:"genres" json:"genres"`
	Runtime    string `koanf:"runtime" json:"runtime"`
	Directors  string `koanf:"directors" json:"directors"`
	Overview   string `koanf:"overview" json:"overview"`
	PosterPath string `koanf:"poster_path" json:"poster_path"`
}

// DefaultColumns returns the column names of the reference dataset.
func DefaultColumns() Columns {
	return Columns{
		Title:      "title",
		Genres:     "genres",
		Runtime:    "runtime",
		Directors:  "directors",
		Overview:   "overview",
		PosterPath: "poster_path",
	}
}

// columnAliases are tried when the configured name is not in the header.
// "title_y" is what a pandas merge of two title columns produces.
var columnAliases = map[string][]string{
	"title":   {"title_y", "title_x", "name"},
	"genres":  {"genre"},
	"runtime": {"runtime_minutes", "duration"},
}

// LoadStats summarizes a load.
type LoadStats struct {
	Rows    int `json:"rows"`
	Skipped int `json:"skipped"`
}

// LoadOptions controls row handling shared by all loaders.
type LoadOptions struct {
	Columns Columns

	// SkipInvalid drops malformed rows instead of failing the load.
	SkipInvalid bool

	// OnSkip is called for every dropped row when SkipInvalid is set.
	OnSkip func(row int, err error)
}

// columnIndex maps Item fields to positions in a header row.
type columnIndex struct {
	title, genres, runtime          int
	directors, overview, posterPath int
}

// resolveColumns locates each configured column in header. Optional columns
// that are absent resolve to -1.
func resolveColumns(header []string, cols Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	find := func(name, canonical string) int {
		if i, ok := pos[strings.ToLower(name)]; ok {
			return i
		}
		for _, alias := range columnAliases[canonical] {
			if i, ok := pos[alias]; ok {
				return i
			}
		}
		return -1
	}

	idx := columnIndex{
		title:      find(cols.Title, "title"),
		genres:     find(cols.Genres, "genres"),
		runtime:    find(cols.Runtime, "runtime"),
		directors:  find(cols.Directors, "directors"),
		overview:   find(cols.Overview, "overview"),
		posterPath: find(cols.PosterPath, "poster_path"),
	}

	switch {
	case idx.title < 0:
		return idx, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Title)
	case idx.genres < 0:
		return idx, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Genres)
	case idx.runtime < 0:
		return idx, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Runtime)
	}
	return idx, nil
}

// itemFromRecord converts one source record. row is 1-based for error messages.
func itemFromRecord(rec []string, idx columnIndex, row int) (Item, error) {
	field := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	title := field(idx.title)
	if title == "" {
		return Item{}, fmt.Errorf("%w: row %d: empty title", ErrMalformedRow, row)
	}

	minutes, err := ParseRuntime(field(idx.runtime))
	if err != nil {
		return Item{}, fmt.Errorf("%w: row %d: %w", ErrMalformedRow, row, err)
	}

	return Item{
		Title:          title,
		Genres:         field(idx.genres),
		RuntimeMinutes: minutes,
		Runtime:        FormatRuntime(minutes),
		Directors:      field(idx.directors),
		Overview:       field(idx.overview),
		PosterPath:     field(idx.posterPath),
	}, nil
}

// MaxRuntimeMinutes bounds parsed runtimes; longer values are rejected.
const MaxRuntimeMinutes = 100000

// ParseRuntime parses a runtime in minutes. Fractional values such as "95.0"
// (common in exported data frames) are truncated.
func ParseRuntime(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty runtime")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("runtime %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxRuntimeMinutes {
		return 0, fmt.Errorf("runtime %q out of range", s)
	}
	return int(v), nil
}
