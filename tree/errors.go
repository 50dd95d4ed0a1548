// SPDX-License-Identifier: MIT

package tree

import "errors"

var (
	// ErrVertexNotFound indicates a vertex id that does not belong to the tree.
	ErrVertexNotFound = errors.New("tree: vertex not found")

	// ErrEmptyTree indicates an operation that requires at least one vertex.
	ErrEmptyTree = errors.New("tree: tree is empty")

	// ErrNotCaterpillar indicates that the non-leaf vertices do not form a path.
	ErrNotCaterpillar = errors.New("tree: not a caterpillar")
)
