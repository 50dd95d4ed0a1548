// SPDX-License-Identifier: MIT

// Package sequence implements status sequences: multisets of per-vertex
// status values represented as status → multiplicity.
//
// Equality is full multiset equality: both key sets and all multiplicities
// must agree. A one-directional containment check ("every entry of a occurs
// in b with the same count") is not equality, because b may carry extra
// statuses; Equal checks both directions.
//
// Text format (one or more lines):
//
//	<count>x<status> <count>x<status> ...
//
// e.g. "2x5 1x12" is the multiset {5, 5, 12}. String renders entries in
// ascending status order, so equal sequences always render identically.
package sequence
