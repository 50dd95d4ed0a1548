// SPDX-License-Identifier: MIT

// Package caterpillar reconstructs a caterpillar from its status sequence.
//
// A caterpillar is a tree whose non-leaf vertices form a path, the backbone.
// The status of a vertex is the sum of its distances to all other vertices.
// Given a sequence (status → multiplicity) Reconstruct either returns a
// caterpillar with exactly that sequence or reports that none exists.
//
// Facts the search relies on, for a backbone vertex of status s whose side
// of the backbone (itself, its leaves and everything behind it) holds A
// vertices:
//
//   - the next backbone vertex inward has status s + 2·A − n;
//   - every leaf of the vertex has status s + n − 2;
//   - the largest status belongs to a leaf of a backbone end.
//
// Search: the backbone is grown from both ends towards the center. The state
// is a pair of frontiers, one per end; a committed frontier records the
// status of the last placed backbone vertex, the size of its side and its
// influx (the distance sum into the part not yet on its side). Vertices are
// placed in non-increasing status order, so the side with the larger next
// status advances; the right end may open at any occurring status below the
// left's current one. Every frontier is checked against closed-form bounds:
// with m = n − A vertices outside, influx ∈ [m, m(m+1)/2] and the own-side
// share status − influx ∈ [A−1, (A−1)A/2]. The two sides meet when their
// sizes add up to n, are adjacent, and their influxes balance
// (influx_L + influx_R = status_L + A_L); the balance pins every placed
// status to its true value.
//
// Each frontier pair's complete set of inner completions is memoised for
// the duration of one call; completions with the same status consumption
// are merged. A completion is dropped as soon as it uses some status more
// often than the sequence provides, and at the top only exact matches are
// accepted. Every returned witness is verified with the status package.
//
// Complexity: the number of frontier pairs is bounded by the sequence, but
// result sets may grow quickly on sequences with high multiplicities; use
// WithMaxStates to bound the work and WithContext to cancel it.
//
// Errors:
//
//   - ErrNoCaterpillar    no caterpillar has the sequence
//   - ErrEmptySequence    empty input (wraps ErrNoCaterpillar)
//   - ErrTooManyCenters   minimum status occurs three or more times (wraps ErrNoCaterpillar)
//   - ErrOddBicentral     minimum status occurs twice with n odd (wraps ErrNoCaterpillar)
//   - ErrBudgetExceeded   more states expanded than WithMaxStates allows
//   - context errors      cancellation or deadline from WithContext
package caterpillar
