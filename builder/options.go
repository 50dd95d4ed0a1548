// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBackboneFraction sets the minimum share of vertices RandomCaterpillar
// places on the backbone. Panics unless 0 < f ≤ 1.
func WithBackboneFraction(f float64) BuilderOption {
	if f <= 0 || f > 1 {
		panic(fmt.Sprintf("builder: WithBackboneFraction(%g) not in (0,1]", f))
	}
	return func(c *builderConfig) {
		c.backboneFraction = f
	}
}
