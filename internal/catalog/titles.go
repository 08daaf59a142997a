// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"sort"
	"strings"
)

// DefaultSuggestionLimit caps autocomplete results when no limit is given.
const DefaultSuggestionLimit = 10

// TitleMatch is one autocomplete suggestion.
type TitleMatch struct {
	Title string `json:"title"`
	Index int    `json:"id"`
}

// titleNode is a node of the prefix tree. Terminal nodes carry every distinct
// title that normalizes to the path leading to them.
type titleNode struct {
	children map[rune]*titleNode
	matches  []TitleMatch
}

func newTitleNode() *titleNode {
	return &titleNode{children: make(map[rune]*titleNode)}
}

// TitleIndex is a case-insensitive prefix tree over catalog titles.
// It is built once and never modified, so lookups need no locking.
type TitleIndex struct {
	root *titleNode
	size int
}

// newTitleIndex indexes each distinct title at its first catalog position.
func newTitleIndex(items []Item) *TitleIndex {
	idx := &TitleIndex{root: newTitleNode()}
	seen := make(map[string]struct{}, len(items))

	for i := range items {
		title := items[i].Title
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		node := idx.root
		for _, ch := range normalizeTitle(title) {
			next := node.children[ch]
			if next == nil {
				next = newTitleNode()
				node.children[ch] = next
			}
			node = next
		}
		node.matches = append(node.matches, TitleMatch{Title: title, Index: i})
		idx.size++
	}
	return idx
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Len returns the number of distinct titles indexed.
func (t *TitleIndex) Len() int {
	return t.size
}

// Suggest returns titles starting with prefix (case-insensitive), sorted
// alphabetically and then by catalog position. A limit <= 0 uses
// DefaultSuggestionLimit.
func (t *TitleIndex) Suggest(prefix string, limit int) []TitleMatch {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	node := t.root
	for _, ch := range normalizeTitle(prefix) {
		node = node.children[ch]
		if node == nil {
			return []TitleMatch{}
		}
	}

	var out []TitleMatch
	collectTitles(node, &out)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].Index < out[j].Index
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func collectTitles(node *titleNode, out *[]TitleMatch) {
	*out = append(*out, node.matches...)
	for _, child := range node.children {
		collectTitles(child, out)
	}
}
