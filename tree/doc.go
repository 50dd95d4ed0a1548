// SPDX-License-Identifier: MIT

// Package tree provides the rooted, variable-arity tree container used by the
// status computer and the caterpillar reconstruction engine.
//
// What:
//
//   - Tree: an arena of vertices addressed by stable integer ids. The arena
//     owns the whole vertex graph; ids are never reused or invalidated.
//   - Reroot: makes any vertex the root by reversing the parent/child links
//     on the path to the old root (O(depth)); nothing else is touched.
//   - Clone: id-preserving deep copy, so "dock" ids kept by a caller remain
//     valid in the copy.
//   - Walk / PreOrder / PostOrder: iterative traversals with context
//     cancellation and pre-/post-order hooks (no recursion depth limit).
//   - Slots[T]: typed per-vertex side tables replacing an untyped annotation
//     slot. Writing an occupied slot is a contract violation and panics.
//   - IsCaterpillar / Backbone: caterpillar detection and backbone extraction.
//
// Complexity:
//
//   - AddVertex:  O(1) amortized
//   - Reroot:     O(depth(v) · deg) for the child-list splices on the path
//   - Clone:      O(V)
//   - Walk:       O(V), Memory O(height) for the explicit stack
//
// Errors:
//
//   - ErrVertexNotFound  vertex id outside the arena
//   - ErrEmptyTree       operation needs at least one vertex
//   - ErrNotCaterpillar  Backbone on a tree whose inner vertices do not form a path
//   - context errors     propagated from Walk
//   - hook errors        propagated from OnVisit / OnExit
package tree
