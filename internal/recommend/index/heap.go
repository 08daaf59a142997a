// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package index

// boundedHeap keeps the k best neighbors seen so far. The root is the worst
// retained neighbor, so a better candidate replaces it in O(log k).
type boundedHeap struct {
	items []Neighbor
	limit int
}

func newBoundedHeap(limit int) *boundedHeap {
	return &boundedHeap{
		items: make([]Neighbor, 0, limit),
		limit: limit,
	}
}

// offer considers n for membership.
func (h *boundedHeap) offer(n Neighbor) {
	if h.limit == 0 {
		return
	}
	if len(h.items) < h.limit {
		h.items = append(h.items, n)
		h.up(len(h.items) - 1)
		return
	}
	if less(n, h.items[0]) {
		h.items[0] = n
		h.down(0)
	}
}

// worse reports whether items[i] ranks after items[j].
func (h *boundedHeap) worse(i, j int) bool {
	return less(h.items[j], h.items[i])
}

func (h *boundedHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.worse(i, parent) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *boundedHeap) down(i int) {
	n := len(h.items)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.worse(left, largest) {
			largest = left
		}
		if right < n && h.worse(right, largest) {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
