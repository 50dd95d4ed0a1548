// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildTree(bopts, cons...) creates the tree, resolves
//     the config and runs the constructors in order.
//   - Factories live in impl_*.go and return Constructor closures.
//   - Determinism: same inputs, options, seed and constructor order ⇒
//     identical trees.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transmission/tree"
)

// Constructor applies a deterministic tree mutation using the resolved
// builderConfig. Constructors validate parameters before touching the tree
// and return sentinel errors; they never panic.
type Constructor func(t *tree.Tree, cfg builderConfig) error

// BuildTree creates an empty tree, resolves the builder configuration from
// bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildTree: %w" and returned immediately.
func BuildTree(bopts []BuilderOption, cons ...Constructor) (*tree.Tree, error) {
	t := tree.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return t, nil
}

// Build is BuildTree for a single constructor.
func Build(con Constructor, opts ...BuilderOption) (*tree.Tree, error) {
	return BuildTree(opts, con)
}

// attach adds one vertex below parent and wraps tree errors with the method name.
func attach(t *tree.Tree, method string, parent int) (int, error) {
	v, err := t.AddVertex(parent)
	if err != nil {
		return tree.NoVertex, fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}
	return v, nil
}

// spine adds a path of k vertices, the first one attached with NoVertex,
// and returns their ids in order.
func spine(t *tree.Tree, method string, k int) ([]int, error) {
	ids := make([]int, 0, k)
	prev := tree.NoVertex
	for i := 0; i < k; i++ {
		v, err := attach(t, method, prev)
		if err != nil {
			return nil, err
		}
		ids = append(ids, v)
		prev = v
	}
	return ids, nil
}
