// SPDX-License-Identifier: MIT

package treeio

import "errors"

var (
	// ErrMalformedEdge indicates a line that is not "<parent> <child>".
	ErrMalformedEdge = errors.New("treeio: malformed edge")

	// ErrDuplicateVertex indicates a child name that was already seen.
	ErrDuplicateVertex = errors.New("treeio: vertex named twice")
)
