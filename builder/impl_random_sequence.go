// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// impl_random_sequence.go - RandomSequence(n, avg): a status sequence that
// looks like a caterpillar's but usually is not one.
//
// Recipe: take the sequence of a RandomCaterpillar(n), then repeatedly pick
// two distinct non-center statuses and move every occurrence of the first
// onto the second, until n ≥ avg·(number of distinct statuses) or fewer than
// two non-center statuses remain. The center (minimum) status is never touched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/status"
	"github.com/katalvlaran/transmission/tree"
)

const (
	methodRandomSequence = "RandomSequence"
	minAvgMultiplicity   = 1.0
)

// RandomSequence returns a random sequence on n vertices with average
// multiplicity at least avg (when reachable). Requires an RNG; the options
// are shared with the underlying RandomCaterpillar.
func RandomSequence(n int, avg float64, opts ...BuilderOption) (sequence.Sequence, error) {
	if avg < minAvgMultiplicity {
		return nil, fmt.Errorf("%s: avg=%g: %w", methodRandomSequence, avg, ErrBadMultiplicity)
	}
	cfg := newBuilderConfig(opts...)
	t := tree.New()
	if err := RandomCaterpillar(n)(t, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSequence, err)
	}
	s, err := status.Sequence(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSequence, err)
	}

	center, _ := s.Min()
	for float64(n) < avg*float64(len(s)) {
		others := make([]int, 0, len(s))
		for _, st := range sequence.Statuses(s) {
			if st != center {
				others = append(others, st)
			}
		}
		if len(others) < 2 {
			break
		}
		x := cfg.rng.Intn(len(others))
		y := cfg.rng.Intn(len(others) - 1)
		if y >= x {
			y++
		}
		from, to := others[x], others[y]
		s.Add(to, s.Count(from))
		s.Add(from, -s.Count(from))
	}
	return s, nil
}
