// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng              = nil  (random constructors refuse to run without one)
//   - backboneFraction = 0.3  (lower bound of the backbone share in RandomCaterpillar)

package builder

import "math/rand"

// DefaultBackboneFraction is the minimum share of vertices RandomCaterpillar
// puts on the backbone.
const DefaultBackboneFraction = 0.3

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Minimum backbone share in (0,1] for RandomCaterpillar.
	backboneFraction float64
}

// newBuilderConfig applies all options in order over the defaults;
// later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		backboneFraction: DefaultBackboneFraction,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
