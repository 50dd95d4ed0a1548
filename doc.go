// SPDX-License-Identifier: MIT

// Package transmission reconstructs caterpillar trees from status sequences.
//
// The status of a vertex is the sum of its distances to every other vertex;
// the status sequence of a tree is the multiset of its vertex statuses. A
// caterpillar is a tree whose non-leaf vertices form a path, the backbone.
//
// Subpackages:
//
//	tree/        rooted tree with integer vertex ids, walks and caterpillar checks
//	status/      status of every vertex in linear time, median, canonical rooting
//	sequence/    status multiset, "NxS" text format, equality
//	caterpillar/ reconstruction engine: a witness caterpillar or ErrNoCaterpillar
//	builder/     deterministic and seeded random trees, caterpillars, sequences
//	treeio/      edge-list reading and writing
//	render/      text drawings of trees
//
// The transmission command (cmd/transmission) wires them into a CLI.
//
// Quick example:
//
//	seq, _ := sequence.Parse("1x4 4x7")
//	res, err := caterpillar.Reconstruct(seq)
//	// res.Tree is the star with four leaves; res.Sequence equals seq.
package transmission
