// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over a slice of values
// ordered by a three-way comparison function.
//
// The minimum element in the tree is the root, at index 0.
// Elements that compare equal may coexist; the heap makes no
// attempt to remove duplicates.
package heap

// New returns a binary heap on the items slice, using cmp to order
// them. cmp(a, b) must return a negative number when a should
// come out of the heap before b, a positive number when it should
// come out after it, and zero otherwise.
//
// The heap takes ownership of items.
func New[E any](items []E, cmp func(a, b E) int) *Heap[E] {
	h := &Heap[E]{
		Items: items,
		cmp:   cmp,
	}
	h.Init()
	return h
}

// Heap implements a binary min-heap.
type Heap[E any] struct {
	// Items holds all the items in the heap. The first item
	// compares less than or equal to all the others.
	Items []E
	cmp   func(E, E) int
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariants required by the other routines in this package.
// Init is idempotent with respect to the heap invariants
// and may be called whenever the heap invariants may have been invalidated.
// The complexity is O(n) where n = h.Len().
func (h *Heap[E]) Init() {
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	h.up(len(h.Items) - 1)
}

// Pop removes and returns the minimum element from the heap.
// It panics if the heap is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Pop() E {
	n := len(h.Items) - 1
	h.Items[0], h.Items[n] = h.Items[n], h.Items[0]
	h.down(0, n)
	x := h.Items[n]
	// Clear the vacated slot so the heap does not keep
	// whatever x refers to alive.
	var zero E
	h.Items[n] = zero
	h.Items = h.Items[:n]
	return x
}

// Peek returns the minimum element without removing it.
// The second result is false if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.Items) == 0 {
		var zero E
		return zero, false
	}
	return h.Items[0], true
}

func (h *Heap[E]) less(i, j int) bool {
	return h.cmp(h.Items[i], h.Items[j]) < 0
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // right child
		}
		if !h.less(j, i) {
			break
		}
		h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
		i = j
	}
}
