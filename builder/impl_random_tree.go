// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// impl_random_tree.go - RandomTree(n): random recursive tree.
//
// Vertex i (i ≥ 1, counted within this constructor) attaches to a uniformly
// chosen earlier vertex of the same constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transmission/tree"
)

const methodRandomTree = "RandomTree"

// RandomTree returns a Constructor that builds a random recursive tree on n
// vertices. Requires an RNG.
func RandomTree(n int) Constructor {
	return func(t *tree.Tree, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		ids := make([]int, 0, n)
		first, err := attach(t, methodRandomTree, tree.NoVertex)
		if err != nil {
			return err
		}
		ids = append(ids, first)
		for i := 1; i < n; i++ {
			v, err := attach(t, methodRandomTree, ids[cfg.rng.Intn(i)])
			if err != nil {
				return err
			}
			ids = append(ids, v)
		}
		return nil
	}
}
