// SPDX-License-Identifier: MIT
// Package: transmission/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("<Method>: n=...: %w").
//   - Validation panics are confined to option constructors (WithX).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadLeafCount indicates a negative leaf count in Caterpillar(leaves).
var ErrBadLeafCount = errors.New("builder: leaf count must be non-negative")

// ErrBadMultiplicity indicates an average multiplicity below 1 in RandomSequence.
var ErrBadMultiplicity = errors.New("builder: average multiplicity must be at least 1")

// ErrConstructFailed indicates a nil constructor or a failure of the
// underlying tree while building.
var ErrConstructFailed = errors.New("builder: construction failed")
