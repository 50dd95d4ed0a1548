// SPDX-License-Identifier: MIT
// Package: transmission/sequence
//
// sequence.go - multiset operations on status sequences.
//
// Invariants:
//   - every present key has multiplicity > 0 (Add drops keys that reach 0).
//   - iteration-order independence: every function that exposes an order
//     sorts first, so results never depend on map iteration.

package sequence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sequence maps a status value to its multiplicity.
type Sequence map[int]int

// New returns an empty sequence.
func New() Sequence { return make(Sequence) }

// Of builds a sequence from individual status values, one entry per vertex.
func Of(statuses ...int) Sequence {
	s := make(Sequence, len(statuses))
	for _, st := range statuses {
		s[st]++
	}
	return s
}

// Add changes the multiplicity of status by k. Keys whose multiplicity drops
// to zero or below are removed.
func (s Sequence) Add(status, k int) {
	m := s[status] + k
	if m <= 0 {
		delete(s, status)
		return
	}
	s[status] = m
}

// Count returns the multiplicity of status (0 when absent).
func (s Sequence) Count(status int) int { return s[status] }

// Has reports whether status occurs.
func (s Sequence) Has(status int) bool { return s[status] > 0 }

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports full multiset equality of a and b: the same statuses with
// the same multiplicities, checked in both directions.
func Equal(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	for k, v := range b {
		if a[k] != v {
			return false
		}
	}
	return true
}

// Equal is the method form of Equal.
func (s Sequence) Equal(o Sequence) bool { return Equal(s, o) }

// VertexCount returns the number of vertices the sequence describes
// (the sum of all multiplicities).
func VertexCount(s Sequence) int {
	n := 0
	for _, m := range s {
		n += m
	}
	return n
}

// Statuses returns the distinct statuses in ascending order.
func Statuses(s Sequence) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Min returns the smallest status; ok is false for an empty sequence.
func (s Sequence) Min() (status int, ok bool) {
	for k := range s {
		if !ok || k < status {
			status, ok = k, true
		}
	}
	return status, ok
}

// Max returns the largest status; ok is false for an empty sequence.
func (s Sequence) Max() (status int, ok bool) {
	for k := range s {
		if !ok || k > status {
			status, ok = k, true
		}
	}
	return status, ok
}

// Fits reports whether s uses no status more often than target does.
func (s Sequence) Fits(target Sequence) bool {
	for k, v := range s {
		if v > target[k] {
			return false
		}
	}
	return true
}

// Validate checks that every status is non-negative and every multiplicity
// positive.
func (s Sequence) Validate() error {
	for _, k := range Statuses(s) {
		if k < 0 {
			return fmt.Errorf("Validate: status %d: %w", k, ErrNegativeStatus)
		}
		if s[k] <= 0 {
			return fmt.Errorf("Validate: %dx%d: %w", s[k], k, ErrBadMultiplicity)
		}
	}
	return nil
}

// Key returns a canonical string for s, suitable as a map key.
// Equal sequences have equal keys.
func (s Sequence) Key() string {
	var b strings.Builder
	for _, k := range Statuses(s) {
		b.WriteString(strconv.Itoa(k))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(s[k]))
		b.WriteByte(';')
	}
	return b.String()
}

// String renders s as "<count>x<status>" tokens in ascending status order.
func (s Sequence) String() string {
	keys := Statuses(s)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strconv.Itoa(s[k])+"x"+strconv.Itoa(k))
	}
	return strings.Join(parts, " ")
}
