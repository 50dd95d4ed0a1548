// SPDX-License-Identifier: MIT
// Package: transmission/caterpillar
//
// engine.go - Engine, Reconstruct and the memoised frontier-pair search.
//
// Contract:
//   - The engine keeps no state between calls; every call owns its memo.
//   - Placement order is non-increasing in status on both ends together.
//   - Local inadmissibility never surfaces as an error: the branch yields an
//     empty set. Only budget, cancellation and the final verdict are errors.
//   - Iteration order is deterministic (ascending statuses, leaf splits
//     left-first, result sets in insertion order).

package caterpillar

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/status"
	"github.com/katalvlaran/transmission/tree"
)

// Stats reports the work done by one call.
type Stats struct {
	// States is the number of expanded frontier pairs.
	States int
	// MemoHits counts frontier pairs answered from the memo.
	MemoHits int
	// LargestSet is the size of the largest memoised result set.
	LargestSet int
	// Pruned counts discarded frontiers and over-consuming completions.
	Pruned int
}

// Result is a successful reconstruction.
type Result struct {
	// Tree is the witness caterpillar.
	Tree *tree.Tree

	// Sequence is the status sequence of Tree, recomputed from scratch.
	Sequence sequence.Sequence

	// Signatures is the number of distinct backbone leaf vectors among the
	// accepted witnesses. Completions with equal consumption are merged
	// during the search, so this is a lower bound on the number of
	// non-isomorphic witnesses.
	Signatures int

	Stats Stats
}

// Engine reconstructs caterpillars. It is safe for concurrent use.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine{opts: o}
}

// Reconstruct is New(opts...).Reconstruct(seq).
func Reconstruct(seq sequence.Sequence, opts ...Option) (*Result, error) {
	return New(opts...).Reconstruct(seq)
}

// Reconstruct returns a caterpillar whose status sequence equals seq.
func (e *Engine) Reconstruct(seq sequence.Sequence) (*Result, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("Reconstruct: %w", ErrEmptySequence)
	}
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}

	n := sequence.VertexCount(seq)
	switch n {
	case 1, 2:
		return e.tiny(seq, n)
	}

	center, _ := seq.Min()
	switch c := seq.Count(center); {
	case c >= 3:
		return nil, fmt.Errorf("Reconstruct: status %d occurs %d times: %w", center, c, ErrTooManyCenters)
	case c == 2 && n%2 == 1:
		return nil, fmt.Errorf("Reconstruct: status %d twice, n=%d: %w", center, n, ErrOddBicentral)
	}

	s := &search{
		n:      n,
		target: seq.Clone(),
		center: center,
		opts:   e.opts,
		log:    e.opts.Logger.With(zap.Int("n", n)),
		memo:   make(map[pair][]*config),
	}
	if e.opts.Mirror {
		s.first = right
	}
	top, err := s.top()
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}
	return s.verdict(top)
}

// tiny handles one and two vertices, where no vertex has a leaf status
// distinct from a backbone status.
func (e *Engine) tiny(seq sequence.Sequence, n int) (*Result, error) {
	want := sequence.Sequence{n - 1: n}
	if !sequence.Equal(seq, want) {
		return nil, fmt.Errorf("Reconstruct: %v on %d vertices: %w", seq, n, ErrNoCaterpillar)
	}
	t, root := tree.NewWithRoot()
	if n == 2 {
		if _, err := t.AddVertex(root); err != nil {
			return nil, fmt.Errorf("Reconstruct: %w", err)
		}
	}
	return &Result{Tree: t, Sequence: want.Clone(), Signatures: 1}, nil
}

// search is the state of one Reconstruct call.
type search struct {
	n      int
	target sequence.Sequence
	center int
	opts   Options
	log    *zap.Logger
	memo   map[pair][]*config
	stats  Stats

	// first is the end opened at the maximum status.
	first side
}

// join returns the pair holding a on end d and b on the other end.
func join(d side, a, b Frontier) pair {
	if d == left {
		return pair{L: a, R: b}
	}
	return pair{L: b, R: a}
}

// top opens the backbone at the neighbour of a maximum-status leaf, either
// on the first end alone or on both ends at once.
func (s *search) top() ([]*config, error) {
	// openings may end in different witnesses: no merging at the top
	rs := resultSet{keepAll: true}
	hi, _ := s.target.Max()
	t1 := hi - (s.n - 2)
	if !s.target.Has(t1) {
		s.log.Debug("no backbone end for the maximum status", zap.Int("max", hi), zap.Int("end", t1))
		return nil, nil
	}
	lead := s.target.Count(hi)
	d := s.first

	if A := s.openEnd(t1, lead); A.Kind == Committed {
		if err := s.descend(join(d, A, openFrontier), &rs, placement{d, t1, lead}); err != nil {
			return nil, err
		}
	} else {
		s.stats.Pruned++
	}
	for lA := 1; lA < lead; lA++ {
		A, B := s.openEnd(t1, lA), s.openEnd(t1, lead-lA)
		if !s.fits(A, B) {
			continue
		}
		if err := s.descend(join(d, A, B), &rs, placement{d, t1, lA}, placement{d.other(), t1, lead - lA}); err != nil {
			return nil, err
		}
	}
	return rs.items, nil
}

// solve returns every inner completion of p.
func (s *search) solve(p pair) ([]*config, error) {
	if set, ok := s.memo[p]; ok {
		s.stats.MemoHits++
		return set, nil
	}
	if err := s.opts.Ctx.Err(); err != nil {
		return nil, err
	}
	s.stats.States++
	if s.opts.MaxStates > 0 && s.stats.States > s.opts.MaxStates {
		return nil, fmt.Errorf("after %d states: %w", s.opts.MaxStates, ErrBudgetExceeded)
	}
	if ce := s.log.Check(zap.DebugLevel, "expand"); ce != nil {
		ce.Write(zap.Stringer("left", p.L), zap.Stringer("right", p.R), zap.Int("states", s.stats.States))
	}

	var (
		rs  resultSet
		err error
	)
	switch {
	case p.R.Kind == Open:
		err = s.oneSided(p.L, left, &rs)
	case p.L.Kind == Open:
		err = s.oneSided(p.R, right, &rs)
	default:
		err = s.twoSided(p.L, p.R, &rs)
	}
	if err != nil {
		return nil, err
	}

	s.memo[p] = rs.items
	if len(rs.items) > s.stats.LargestSet {
		s.stats.LargestSet = len(rs.items)
	}
	return rs.items, nil
}

// oneSided expands a pair with a single committed end A on side d; the
// other end is still open.
func (s *search) oneSided(A Frontier, d side, rs *resultSet) error {
	if A.Size == s.n {
		// the whole caterpillar hangs off one end
		if A.Influx == 0 && A.Status == s.center {
			rs.add(emptyConfig())
		}
		return nil
	}
	e := d.other()
	tA := s.next(A)

	// A advances alone
	if tA < A.Status {
		for _, l := range s.leafTotals(tA) {
			A2 := s.advance(A, l)
			if !s.fits(A2, openFrontier) {
				continue
			}
			if err := s.descend(join(d, A2, openFrontier), rs, placement{d, tA, l}); err != nil {
				return err
			}
		}
	}

	// the other end opens at u, before or together with A's next vertex
	for _, u := range s.occurring(tA, A.Status) {
		for _, total := range s.leafTotals(u) {
			if u > tA {
				if total < 1 {
					continue
				}
				B := s.openEnd(u, total)
				if !s.fits(A, B) {
					continue
				}
				if err := s.descend(join(d, A, B), rs, placement{e, u, total}); err != nil {
					return err
				}
				continue
			}
			for lA := 0; lA < total; lA++ {
				A2, B := s.advance(A, lA), s.openEnd(u, total-lA)
				if !s.fits(A2, B) {
					continue
				}
				if err := s.descend(join(d, A2, B), rs, placement{d, tA, lA}, placement{e, u, total - lA}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// twoSided expands a pair with both ends committed.
func (s *search) twoSided(L, R Frontier, rs *resultSet) error {
	if L.Size+R.Size == s.n {
		if s.meet(L, R) {
			rs.add(emptyConfig())
		} else {
			s.stats.Pruned++
		}
		return nil
	}
	tL, tR := s.next(L), s.next(R)

	switch {
	case tL > tR:
		if tL >= L.Status {
			return nil
		}
		for _, l := range s.leafTotals(tL) {
			L2 := s.advance(L, l)
			if !s.fits(L2, R) {
				continue
			}
			if err := s.descend(pair{L2, R}, rs, placement{left, tL, l}); err != nil {
				return err
			}
		}

	case tR > tL:
		if tR >= R.Status {
			return nil
		}
		for _, l := range s.leafTotals(tR) {
			R2 := s.advance(R, l)
			if !s.fits(L, R2) {
				continue
			}
			if err := s.descend(pair{L, R2}, rs, placement{right, tR, l}); err != nil {
				return err
			}
		}

	default:
		t := tL
		if t >= L.Status || t >= R.Status {
			return nil
		}
		d, e := s.first, s.first.other()
		A, B := L, R
		if d == right {
			A, B = R, L
		}
		rest := s.n - L.Size - R.Size - 1
		for _, total := range s.leafTotals(t) {
			// a single vertex left between the ends, placed from the first end
			if total == rest {
				A2 := s.advance(A, total)
				if s.fits(A2, B) {
					if err := s.descend(join(d, A2, B), rs, placement{d, t, total}); err != nil {
						return err
					}
				}
			}
			// two distinct vertices of status t, one per end
			for lA := 0; lA <= total; lA++ {
				A2, B2 := s.advance(A, lA), s.advance(B, total-lA)
				if !s.fits(A2, B2) {
					continue
				}
				if err := s.descend(join(d, A2, B2), rs, placement{d, t, lA}, placement{e, t, total - lA}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// descend solves p and adds every completion, extended by the outer
// placements ps, to rs.
func (s *search) descend(p pair, rs *resultSet, ps ...placement) error {
	sub, err := s.solve(p)
	if err != nil {
		return err
	}
	for _, c := range sub {
		ext, err := s.extend(c, ps)
		if err != nil {
			return err
		}
		if ext == nil {
			s.stats.Pruned++
			continue
		}
		rs.add(ext)
	}
	return nil
}

// meet reports whether two committed ends whose sides cover all vertices
// are adjacent and carry their true statuses. The test is symmetric in L
// and R.
func (s *search) meet(L, R Frontier) bool {
	if R.Status != s.next(L) {
		return false
	}
	if L.Influx+R.Influx != L.Status+L.Size {
		return false
	}
	return min(L.Status, R.Status) == s.center
}

// fits reports whether both ends are usable together: no invalid end and
// no more vertices than n on the two sides.
func (s *search) fits(L, R Frontier) bool {
	if L.Kind == Invalid || R.Kind == Invalid || L.Size+R.Size > s.n {
		s.stats.Pruned++
		return false
	}
	return true
}

// leafTotals returns the candidate leaf counts for backbone vertices of
// status t: the multiplicity of the leaf status t+n-2 minus the up to two
// backbone vertices that may share it.
func (s *search) leafTotals(t int) []int {
	m := s.target.Count(t + s.n - 2)
	out := make([]int, 0, 3)
	for b := 0; b <= 2 && m-b >= 0; b++ {
		out = append(out, m-b)
	}
	return out
}

// occurring returns the statuses u of the target with lo ≤ u < hi whose
// leaf status also occurs, ascending.
func (s *search) occurring(lo, hi int) []int {
	var out []int
	for _, u := range sequence.Statuses(s.target) {
		if u >= lo && u < hi && s.target.Has(u+s.n-2) {
			out = append(out, u)
		}
	}
	return out
}

// verdict picks the first completion that matches the target exactly and
// survives recomputation of its statuses.
func (s *search) verdict(top []*config) (*Result, error) {
	var (
		res  *Result
		sigs = make(map[string]struct{})
	)
	for _, c := range top {
		if !sequence.Equal(c.used, s.target) {
			continue
		}
		got, err := status.Sequence(c.t)
		if err != nil {
			return nil, fmt.Errorf("Reconstruct: %w", err)
		}
		if !sequence.Equal(got, s.target) {
			s.log.Warn("witness failed verification", zap.Stringer("got", got))
			continue
		}
		sigs[signature(c.t)] = struct{}{}
		if res == nil {
			res = &Result{Tree: c.t, Sequence: got}
		}
	}

	s.log.Debug("search done",
		zap.Int("states", s.stats.States),
		zap.Int("memo_hits", s.stats.MemoHits),
		zap.Int("largest_set", s.stats.LargestSet),
		zap.Int("pruned", s.stats.Pruned),
		zap.Int("witnesses", len(sigs)),
	)
	if res == nil {
		return nil, fmt.Errorf("Reconstruct: %v: %w", s.target, ErrNoCaterpillar)
	}
	res.Signatures = len(sigs)
	res.Stats = s.stats
	return res, nil
}

// signature renders the leaf counts along the backbone of t, read from the
// end that gives the smaller string.
func signature(t *tree.Tree) string {
	bb, err := tree.Backbone(t)
	if err != nil || len(bb) == 0 {
		return strconv.Itoa(t.Size())
	}
	counts := make([]string, len(bb))
	for i, v := range bb {
		k := 0
		for _, u := range t.Neighbors(v) {
			if t.Degree(u) == 1 {
				k++
			}
		}
		counts[i] = strconv.Itoa(k)
	}
	fwd := strings.Join(counts, ",")
	for i, j := 0, len(counts)-1; i < j; i, j = i+1, j-1 {
		counts[i], counts[j] = counts[j], counts[i]
	}
	rev := strings.Join(counts, ",")
	if rev < fwd {
		return rev
	}
	return fwd
}
