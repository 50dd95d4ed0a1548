// SPDX-License-Identifier: MIT
// Package: transmission/caterpillar
//
// config.go - candidate completions and their extension.
//
// A config is a partial witness: the inner part of the caterpillar built
// so far (grown from the center outwards), the outermost vertex on each end
// ("dock") and the statuses it consumes. Configs stored in the memo are never
// modified; extending one clones its tree and consumption first.

package caterpillar

import (
	"fmt"

	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/tree"
)

type side uint8

const (
	left side = iota
	right
)

func (d side) other() side { return 1 - d }

// placement is one backbone vertex placed on an end, with its leaves.
type placement struct {
	side   side
	status int
	leaves int
}

type config struct {
	t    *tree.Tree
	dock [2]int
	used sequence.Sequence
}

func emptyConfig() *config {
	return &config{
		t:    tree.New(),
		dock: [2]int{tree.NoVertex, tree.NoVertex},
		used: sequence.New(),
	}
}

// extend returns c with the outer placements ps added, or nil when the
// consumption would exceed the target.
func (s *search) extend(c *config, ps []placement) (*config, error) {
	used := c.used.Clone()
	for _, p := range ps {
		used.Add(p.status, 1)
		if p.leaves > 0 {
			used.Add(p.status+s.n-2, p.leaves)
		}
	}
	if !used.Fits(s.target) {
		return nil, nil
	}

	out := &config{t: c.t.Clone(), dock: c.dock, used: used}
	for _, p := range ps {
		// an end without a vertex yet hangs off the root: the innermost
		// vertex, adjacent to the other end by the meet condition
		v, err := out.t.AddVertex(out.dock[p.side])
		if err != nil {
			return nil, fmt.Errorf("extend: %w", err)
		}
		if _, err = out.t.AddLeaves(v, p.leaves); err != nil {
			return nil, fmt.Errorf("extend: %w", err)
		}
		out.dock[p.side] = v
	}
	return out, nil
}

// resultSet collects configs in insertion order, merging configs with equal
// consumption unless keepAll is set.
type resultSet struct {
	items   []*config
	seen    map[string]struct{}
	keepAll bool
}

func (r *resultSet) add(c *config) {
	if r.keepAll {
		r.items = append(r.items, c)
		return
	}
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	k := c.used.Key()
	if _, dup := r.seen[k]; dup {
		return
	}
	r.seen[k] = struct{}{}
	r.items = append(r.items, c)
}
