// SPDX-License-Identifier: MIT

// Package builder provides deterministic and seeded generators of test trees
// and status sequences in the "functional options" style.
//
// Components:
//
//   - Constructor:     a closure that grows a *tree.Tree from a resolved config.
//   - BuildTree/Build: the orchestrators that resolve options and run
//     constructors in order.
//   - Topologies:      Path, Star, Caterpillar(leaves), RandomTree,
//     RandomCaterpillar, SparseCaterpillar.
//   - Data helper:     RandomSequence(n, avg) derives a sequence from a random
//     caterpillar by merging non-center statuses.
//   - Options:         WithSeed, WithRand, WithBackboneFraction.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical trees (ids included).
//   - Random constructors require an RNG (ErrNeedRandSource otherwise).
//   - Option constructors panic on meaningless values; constructors never
//     panic and return sentinel errors wrapped with the constructor name.
//
// Composition: the first vertex of every constructor is attached with
// tree.NoVertex, so on a non-empty tree a later constructor hangs its
// topology below the current root.
package builder
