// SPDX-License-Identifier: MIT
// Package: transmission/status
//
// status.go - linear-time status computation and median rerooting.

package status

import (
	"fmt"

	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/tree"
)

// Result holds the status of every vertex and the resulting sequence.
type Result struct {
	// PerVertex maps vertex id → status.
	PerVertex map[int]int

	// Sequence is the multiset of all statuses.
	Sequence sequence.Sequence
}

// Compute returns the status of every vertex of t.
// An empty tree yields an empty result.
func Compute(t *tree.Tree) (*Result, error) {
	if t == nil {
		return nil, fmt.Errorf("Compute: %w", ErrNilTree)
	}
	res := &Result{
		PerVertex: make(map[int]int, t.Size()),
		Sequence:  sequence.New(),
	}
	if t.Empty() {
		return res, nil
	}

	n := t.Size()
	root := t.Root()
	size := tree.NewSlots[int](t)
	below := tree.NewSlots[int](t) // distance sum into the own subtree
	status := tree.NewSlots[int](t)
	defer size.ClearAll()
	defer below.ClearAll()
	defer status.ClearAll()

	// pass 1: sizes and subtree distance sums, children before parents
	err := t.Walk(root, tree.WithOnExit(func(v, _ int) error {
		sz, sum := 1, 0
		for _, c := range t.Children(v) {
			cs := size.MustGet(c)
			sz += cs
			sum += below.MustGet(c) + cs
		}
		size.Set(v, sz)
		below.Set(v, sum)
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	// pass 2: statuses, parents before children
	err = t.Walk(root, tree.WithOnVisit(func(v, _ int) error {
		p := t.Parent(v)
		if p == tree.NoVertex {
			status.Set(v, below.MustGet(v))
			return nil
		}
		sv := size.MustGet(v)
		above := status.MustGet(p) - (below.MustGet(v) + sv) + (n - sv)
		status.Set(v, below.MustGet(v)+above)
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	// pass 3: collect
	for _, v := range t.Vertices() {
		s := status.MustGet(v)
		res.PerVertex[v] = s
		res.Sequence.Add(s, 1)
	}

	return res, nil
}

// Sequence returns only the status sequence of t.
func Sequence(t *tree.Tree) (sequence.Sequence, error) {
	res, err := Compute(t)
	if err != nil {
		return nil, err
	}
	return res.Sequence, nil
}

// Median returns a vertex of minimum status. Ties go to the smallest id.
func Median(t *tree.Tree) (int, error) {
	if t == nil {
		return tree.NoVertex, fmt.Errorf("Median: %w", ErrNilTree)
	}
	if t.Empty() {
		return tree.NoVertex, fmt.Errorf("Median: %w", tree.ErrEmptyTree)
	}
	res, err := Compute(t)
	if err != nil {
		return tree.NoVertex, err
	}
	best := tree.NoVertex
	for _, v := range t.Vertices() {
		if best == tree.NoVertex || res.PerVertex[v] < res.PerVertex[best] {
			best = v
		}
	}
	return best, nil
}

// Canonicalize reroots t at its median.
func Canonicalize(t *tree.Tree) error {
	m, err := Median(t)
	if err != nil {
		return fmt.Errorf("Canonicalize: %w", err)
	}
	return t.Reroot(m)
}
