package caterpillar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transmission/sequence"
)

func newSearch(seq sequence.Sequence) *search {
	center, _ := seq.Min()
	return &search{
		n:      sequence.VertexCount(seq),
		target: seq,
		center: center,
		opts:   DefaultOptions(),
		log:    DefaultOptions().Logger,
		memo:   make(map[pair][]*config),
	}
}

func TestOpenEndBounds(t *testing.T) {
	// P4: opening one end with both maximum leaves puts 3 vertices on one
	// side with influx 2, but a single outside vertex allows influx 1 only
	s := newSearch(sequence.Sequence{4: 2, 6: 2})
	require.Equal(t, Invalid, s.openEnd(4, 2).Kind)

	f := s.openEnd(4, 1)
	require.Equal(t, Frontier{Kind: Committed, Status: 4, Size: 2, Influx: 3}, f)
	require.Equal(t, 1, f.own())
}

func TestAdvanceTracksInflux(t *testing.T) {
	// P5 grown from the left: 7 → 6 with no leaves on the middle vertex
	s := newSearch(sequence.Sequence{6: 1, 7: 2, 10: 2})
	L := s.openEnd(7, 1)
	require.Equal(t, Committed, L.Kind)
	require.Equal(t, 6, s.next(L))

	L2 := s.advance(L, 0)
	require.Equal(t, Frontier{Kind: Committed, Status: 6, Size: 3, Influx: 3}, L2)

	R := s.openEnd(7, 1)
	require.True(t, s.meet(L2, R))
	require.False(t, s.meet(L, R), "sizes 2+2 do not cover 5 vertices and statuses are not adjacent")
}

func TestAdmitRejectsUnknownStatus(t *testing.T) {
	s := newSearch(sequence.Sequence{4: 1, 7: 4})
	require.Equal(t, Invalid, s.openEnd(5, 4).Kind)
	require.Equal(t, Committed, s.openEnd(4, 4).Kind)
}

func TestLeafTotals(t *testing.T) {
	s := newSearch(sequence.Sequence{6: 1, 7: 2, 10: 2})
	require.Equal(t, []int{2, 1, 0}, s.leafTotals(7))
	require.Equal(t, []int{0}, s.leafTotals(6))
}

func TestFrontierString(t *testing.T) {
	require.Equal(t, "open", openFrontier.String())
	require.Equal(t, "invalid", invalidFrontier.String())
	require.Equal(t, "(s=4 a=2 f=3)", Frontier{Kind: Committed, Status: 4, Size: 2, Influx: 3}.String())
}

func TestResultSetMergesEqualConsumption(t *testing.T) {
	var rs resultSet
	a, b := emptyConfig(), emptyConfig()
	a.used.Add(3, 1)
	b.used.Add(3, 1)
	rs.add(a)
	rs.add(b)
	require.Len(t, rs.items, 1)
	require.Same(t, a, rs.items[0])

	all := resultSet{keepAll: true}
	all.add(a)
	all.add(b)
	require.Len(t, all.items, 2)
}

func TestFirstEndKeysTheMemo(t *testing.T) {
	seq := sequence.Sequence{15: 1, 17: 1, 21: 2, 23: 3, 29: 3}
	for _, d := range []side{left, right} {
		s := newSearch(seq)
		s.first = d
		top, err := s.top()
		require.NoError(t, err)
		res, err := s.verdict(top)
		require.NoError(t, err)
		require.True(t, sequence.Equal(seq, res.Sequence))

		halfOpen := 0
		for p := range s.memo {
			require.False(t, p.L.Kind == Open && p.R.Kind == Open)
			switch d {
			case left:
				require.NotEqual(t, Open, p.L.Kind, "%v %v", p.L, p.R)
			case right:
				require.NotEqual(t, Open, p.R.Kind, "%v %v", p.L, p.R)
			}
			if p.L.Kind == Open || p.R.Kind == Open {
				halfOpen++
			}
		}
		require.Positive(t, halfOpen)
	}
}

func TestJoin(t *testing.T) {
	a := Frontier{Kind: Committed, Status: 5, Size: 2, Influx: 4}
	require.Equal(t, pair{L: a, R: openFrontier}, join(left, a, openFrontier))
	require.Equal(t, pair{L: openFrontier, R: a}, join(right, a, openFrontier))
	require.Equal(t, right, left.other())
	require.Equal(t, left, right.other())
}
