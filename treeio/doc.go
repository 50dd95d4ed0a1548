// SPDX-License-Identifier: MIT

// Package treeio reads and writes trees as edge lists.
//
// Format: one edge per line, "<parent> <child>", vertex names are
// non-negative integers. The first parent name seen becomes the root; a
// child name must not have been seen before. A line holding a single name
// declares a lone vertex, which is how a one-vertex tree is written.
// Blank lines are ignored.
//
// Write names the root 0 and numbers the other vertices in breadth-first
// order, children in insertion order, so Write output read back by Read
// yields a tree whose vertex ids equal the written names.
package treeio
