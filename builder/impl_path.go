// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// impl_path.go - Path(n) and Star(n).
//
// Path: vertex i is the parent of vertex i+1; the first vertex is the root
// (or hangs below the current root when composed).
// Star: a hub with n-1 leaves, hub first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transmission/tree"
)

const (
	methodPath   = "Path"
	methodStar   = "Star"
	minPathNodes = 1
	minStarNodes = 2
)

// Path returns a Constructor that builds a path on n vertices.
func Path(n int) Constructor {
	return func(t *tree.Tree, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		_, err := spine(t, methodPath, n)
		return err
	}
}

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(t *tree.Tree, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := attach(t, methodStar, tree.NoVertex)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err = attach(t, methodStar, hub); err != nil {
				return err
			}
		}
		return nil
	}
}
