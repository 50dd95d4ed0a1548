// SPDX-License-Identifier: MIT

// Package status computes the status (transmission) of every vertex of a
// tree: the sum of its distances to all other vertices.
//
// The computation takes three linear passes over a rooted tree:
//
//  1. post-order: subtree sizes and the distance sum from each vertex into
//     its own subtree;
//  2. pre-order: status(root) is its subtree distance sum; for a child u of
//     v the distances leaving u's subtree are derived from status(v), so
//     status(u) = status(v) + n − 2·size(u);
//  3. collection into a sequence.Sequence.
//
// Each pass keeps its values in its own tree.Slots table, released when the
// computation finishes, so the tree is left untouched.
//
// Complexity: O(V) time, O(V) memory. Naive is the O(V²) breadth-first
// oracle used to cross-check Compute.
//
// Errors:
//
//   - ErrNilTree          nil tree argument
//   - tree.ErrEmptyTree   Median / Canonicalize on an empty tree
package status
