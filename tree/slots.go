// SPDX-License-Identifier: MIT
// Package: transmission/tree
//
// slots.go - typed per-vertex side tables for multi-pass algorithms.
//
// Contract:
//   - a slot holds at most one value; Set on an occupied slot panics.
//   - MustGet on an empty slot panics; Get reports emptiness instead.
//   - tables are indexed by vertex id and grow with the tree.

package tree

import "fmt"

// Slots is a typed side table holding at most one value per vertex.
//
// Writing into an occupied slot is a contract violation and panics; clear
// the slot first. The table grows on demand when the tree grows.
type Slots[T any] struct {
	values []T
	used   []bool
}

// NewSlots returns an empty side table sized for t.
func NewSlots[T any](t *Tree) *Slots[T] {
	n := 0
	if t != nil {
		n = t.Size()
	}
	return &Slots[T]{
		values: make([]T, n),
		used:   make([]bool, n),
	}
}

func (s *Slots[T]) grow(v int) {
	for len(s.values) <= v {
		var zero T
		s.values = append(s.values, zero)
		s.used = append(s.used, false)
	}
}

// Set stores val for v. It panics if the slot already holds a value.
func (s *Slots[T]) Set(v int, val T) {
	if v < 0 {
		panic(fmt.Sprintf("tree: Slots.Set on invalid vertex %d", v))
	}
	s.grow(v)
	if s.used[v] {
		panic(fmt.Sprintf("tree: slot of vertex %d is already occupied", v))
	}
	s.values[v] = val
	s.used[v] = true
}

// Get returns the value stored for v and whether the slot is occupied.
func (s *Slots[T]) Get(v int) (T, bool) {
	if v < 0 || v >= len(s.values) || !s.used[v] {
		var zero T
		return zero, false
	}
	return s.values[v], true
}

// MustGet returns the value stored for v. It panics if the slot is empty.
func (s *Slots[T]) MustGet(v int) T {
	val, ok := s.Get(v)
	if !ok {
		panic(fmt.Sprintf("tree: slot of vertex %d is empty", v))
	}
	return val
}

// Occupied reports whether v currently holds a value.
func (s *Slots[T]) Occupied(v int) bool {
	return v >= 0 && v < len(s.used) && s.used[v]
}

// Clear releases the slot of v.
func (s *Slots[T]) Clear(v int) {
	if v < 0 || v >= len(s.values) {
		return
	}
	var zero T
	s.values[v] = zero
	s.used[v] = false
}

// ClearSubtree releases the slots of every vertex below (and including) v.
func (s *Slots[T]) ClearSubtree(t *Tree, v int) {
	for _, u := range t.PreOrder(v) {
		s.Clear(u)
	}
}

// ClearAll releases every slot.
func (s *Slots[T]) ClearAll() {
	for v := range s.values {
		s.Clear(v)
	}
}
