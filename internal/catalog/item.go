// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"fmt"
	"strings"
)

// DefaultPosterBaseURL is the image host the poster paths in the source data refer to.
const DefaultPosterBaseURL = "https://image.tmdb.org/t/p/original"

// Item is one catalog entry.
type Item struct {
	// ID is the row position within the catalog (0..N-1).
	ID int `json:"id"`

	// Title is the external lookup key. Titles are not guaranteed unique.
	Title string `json:"title"`

	// Genres is the raw genre value as loaded, e.g. "Drama" or "Action|Comedy".
	Genres string `json:"genres"`

	// RuntimeMinutes is the duration in minutes.
	RuntimeMinutes int `json:"runtime_minutes"`

	// Runtime is the formatted duration, e.g. "2h 15min".
	Runtime string `json:"runtime"`

	// Directors, Overview and PosterPath are passed through unchanged.
	Directors  string `json:"directors,omitempty"`
	Overview   string `json:"overview,omitempty"`
	PosterPath string `json:"poster_path,omitempty"`

	// PosterURL is PosterPath resolved against the configured image host.
	PosterURL string `json:"poster_url,omitempty"`
}

// FormatRuntime renders a duration in minutes as "{hours}h {minutes}min".
// Durations under an hour keep the hour part ("0h 45min"). Negative input
// renders as "0h 0min"; ParseRuntime never produces it.
func FormatRuntime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// GenreTags splits the raw genre value on any of the given separators.
// Empty tags are dropped and surrounding whitespace is trimmed. With no
// separators the whole value is a single tag.
func (it *Item) GenreTags(separators string) []string {
	raw := strings.TrimSpace(it.Genres)
	if raw == "" {
		return nil
	}
	if separators == "" {
		return []string{raw}
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// resolvePosterURL joins base and path with exactly one slash.
func resolvePosterURL(base, path string) string {
	if path == "" {
		return ""
	}
	if base == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
