// SPDX-License-Identifier: MIT

package tree

import "fmt"

// IsCaterpillar reports whether the non-leaf vertices of t form a single
// path. Leaves are taken in the graph sense (degree ≤ 1), so a root of
// degree one counts as a leaf. The empty tree, a single vertex and a single
// edge are caterpillars.
//
// Complexity: O(V).
func IsCaterpillar(t *Tree) bool {
	if t == nil || t.Empty() {
		return true
	}
	// The inner vertices of a tree induce a subtree; it is a path iff no
	// inner vertex has more than two inner neighbours.
	for _, v := range t.Vertices() {
		if t.Degree(v) < 2 {
			continue
		}
		inner := 0
		for _, u := range t.Neighbors(v) {
			if t.Degree(u) >= 2 {
				inner++
			}
		}
		if inner > 2 {
			return false
		}
	}
	return true
}

// Backbone returns the inner vertices of a caterpillar ordered from one end
// of the path to the other. Trees with fewer than three vertices have no
// inner vertex and yield an empty backbone.
func Backbone(t *Tree) ([]int, error) {
	if t == nil || t.Empty() {
		return nil, fmt.Errorf("Backbone: %w", ErrEmptyTree)
	}
	if !IsCaterpillar(t) {
		return nil, fmt.Errorf("Backbone: %w", ErrNotCaterpillar)
	}

	// find an end of the inner path: an inner vertex with ≤ 1 inner neighbour
	start := NoVertex
	for _, v := range t.Vertices() {
		if t.Degree(v) < 2 {
			continue
		}
		if innerNeighbors(t, v, NoVertex) <= 1 {
			start = v
			break
		}
	}
	if start == NoVertex {
		return nil, nil
	}

	path := []int{start}
	prev, cur := NoVertex, start
	for {
		next := NoVertex
		for _, u := range t.Neighbors(cur) {
			if u != prev && t.Degree(u) >= 2 {
				next = u
				break
			}
		}
		if next == NoVertex {
			return path, nil
		}
		path = append(path, next)
		prev, cur = cur, next
	}
}

// innerNeighbors counts neighbours of v other than skip with degree ≥ 2.
func innerNeighbors(t *Tree, v, skip int) int {
	n := 0
	for _, u := range t.Neighbors(v) {
		if u != skip && t.Degree(u) >= 2 {
			n++
		}
	}
	return n
}
