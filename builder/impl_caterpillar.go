// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// impl_caterpillar.go - Caterpillar(leaves), RandomCaterpillar(n) and
// SparseCaterpillar(n).
//
// Vertex order: the whole backbone first (end to end), then the leaves.
// RandomCaterpillar follows the classic recipe: the backbone takes at least
// backboneFraction·n vertices plus a random share of the rest, every other
// vertex hangs off a uniformly chosen backbone vertex.
// SparseCaterpillar puts at least half of the vertices on the backbone and
// gives one leaf to each of a random subset of backbone vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transmission/tree"
)

const (
	methodCaterpillar       = "Caterpillar"
	methodRandomCaterpillar = "RandomCaterpillar"
	methodSparseCaterpillar = "SparseCaterpillar"
	minCaterpillarBackbone  = 1
	minRandomNodes          = 1
)

// Caterpillar returns a Constructor that builds a backbone of len(leaves)
// vertices where backbone vertex i carries leaves[i] leaves.
func Caterpillar(leaves []int) Constructor {
	return func(t *tree.Tree, _ builderConfig) error {
		if len(leaves) < minCaterpillarBackbone {
			return fmt.Errorf("%s: backbone=%d < min=%d: %w",
				methodCaterpillar, len(leaves), minCaterpillarBackbone, ErrTooFewVertices)
		}
		for i, k := range leaves {
			if k < 0 {
				return fmt.Errorf("%s: leaves[%d]=%d: %w", methodCaterpillar, i, k, ErrBadLeafCount)
			}
		}
		backbone, err := spine(t, methodCaterpillar, len(leaves))
		if err != nil {
			return err
		}
		for i, k := range leaves {
			for j := 0; j < k; j++ {
				if _, err = attach(t, methodCaterpillar, backbone[i]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomCaterpillar returns a Constructor that builds a random caterpillar on
// n vertices. Requires an RNG.
func RandomCaterpillar(n int) Constructor {
	return func(t *tree.Tree, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomCaterpillar, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCaterpillar, ErrNeedRandSource)
		}

		b := int(float64(n) * cfg.backboneFraction)
		if spread := n - b; spread > 0 {
			b += cfg.rng.Intn(spread)
		}
		b = clamp(b, 1, n)

		backbone, err := spine(t, methodRandomCaterpillar, b)
		if err != nil {
			return err
		}
		for i := b; i < n; i++ {
			if _, err = attach(t, methodRandomCaterpillar, backbone[cfg.rng.Intn(b)]); err != nil {
				return err
			}
		}
		return nil
	}
}

// SparseCaterpillar returns a Constructor that builds a random caterpillar on
// n vertices whose backbone vertices carry at most one leaf each.
// Requires an RNG.
func SparseCaterpillar(n int) Constructor {
	return func(t *tree.Tree, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSparseCaterpillar, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodSparseCaterpillar, ErrNeedRandSource)
		}

		b := (n + 1) / 2
		if spread := n / 3; spread > 0 {
			b += cfg.rng.Intn(spread)
		}
		b = clamp(b, 1, n)

		backbone, err := spine(t, methodSparseCaterpillar, b)
		if err != nil {
			return err
		}
		// n-b ≤ b, so the first n-b backbone vertices of a random order
		// each receive exactly one leaf
		order := cfg.rng.Perm(b)
		for i := 0; i < n-b; i++ {
			if _, err = attach(t, methodSparseCaterpillar, backbone[order[i]]); err != nil {
				return err
			}
		}
		return nil
	}
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
