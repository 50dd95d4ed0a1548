// SPDX-License-Identifier: MIT
// Package: transmission/caterpillar
//
// frontier.go - the per-end search state and its admissibility bounds.

package caterpillar

import "fmt"

// Kind tags the variant held by a Frontier.
type Kind uint8

const (
	// Open: no backbone vertex placed on this end yet.
	Open Kind = iota
	// Committed: Status, Size and Influx describe the last placed vertex.
	Committed
	// Invalid: the end violates a bound; its branch yields nothing.
	Invalid
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Committed:
		return "committed"
	default:
		return "invalid"
	}
}

// Frontier is one end of a partially grown backbone.
// Only a Committed frontier carries meaningful numbers.
type Frontier struct {
	Kind Kind

	// Status of the last placed backbone vertex.
	Status int

	// Size of the placed side: the backbone vertices behind and including
	// the last one, plus all their leaves.
	Size int

	// Influx is the distance sum from the last placed vertex to every vertex
	// not on its side.
	Influx int
}

// String implements fmt.Stringer.
func (f Frontier) String() string {
	if f.Kind != Committed {
		return f.Kind.String()
	}
	return fmt.Sprintf("(s=%d a=%d f=%d)", f.Status, f.Size, f.Influx)
}

// own is the distance sum from the last placed vertex into its own side.
func (f Frontier) own() int { return f.Status - f.Influx }

// pair is the memo key: a frontier per end.
type pair struct {
	L, R Frontier
}

var (
	openFrontier    = Frontier{Kind: Open}
	invalidFrontier = Frontier{Kind: Invalid}
)

// openEnd returns the frontier of a fresh backbone end of status t with l
// leaves.
func (s *search) openEnd(t, l int) Frontier {
	return s.admit(Frontier{Kind: Committed, Status: t, Size: l + 1, Influx: t - l})
}

// next returns the status the vertex following f would have.
func (s *search) next(f Frontier) int {
	return f.Status + 2*f.Size - s.n
}

// advance moves f one backbone vertex inward; the new vertex gets l leaves.
func (s *search) advance(f Frontier, l int) Frontier {
	return s.admit(Frontier{
		Kind:   Committed,
		Status: s.next(f),
		Size:   f.Size + l + 1,
		Influx: f.Influx + f.Size - s.n - l,
	})
}

// admit checks the closed-form bounds of a committed frontier and returns
// either f or the invalid frontier.
func (s *search) admit(f Frontier) Frontier {
	if f.Size < 1 || f.Size > s.n || !s.target.Has(f.Status) {
		return invalidFrontier
	}
	m := s.n - f.Size
	if f.Influx < m || f.Influx > m*(m+1)/2 {
		return invalidFrontier
	}
	a := f.Size
	if g := f.own(); g < a-1 || g > (a-1)*a/2 {
		return invalidFrontier
	}
	return f
}
