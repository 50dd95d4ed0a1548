// SPDX-License-Identifier: MIT
// Package: transmission/tree
//
// types.go - arena representation of a rooted tree.
//
// Invariants:
//   - vertex ids are indices into Tree.vertices and are stable for the
//     lifetime of the tree (there is no removal).
//   - exactly one vertex (the root) has parent NoVertex when the tree is
//     non-empty; every other vertex has exactly one parent.
//   - Size() equals the number of vertices reachable from the root.

package tree

// NoVertex marks an absent vertex: the parent of the root, an unset dock,
// or the root of an empty tree.
const NoVertex = -1

// vertex is one arena cell: the parent link and the ordered child list.
type vertex struct {
	parent   int   // NoVertex for the root
	children []int // owned children in insertion order
}

// Tree is a rooted, variable-arity tree stored as an arena of vertices.
// The zero value is not usable; create trees with New or NewWithRoot.
//
// A Tree is not safe for concurrent mutation. Read-only use from several
// goroutines is fine once construction is done.
type Tree struct {
	vertices []vertex
	root     int
}
