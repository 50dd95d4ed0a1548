package caterpillar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/transmission/builder"
	"github.com/katalvlaran/transmission/caterpillar"
	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/status"
	"github.com/katalvlaran/transmission/tree"
)

// parents lists the parent of every vertex in id order.
func parents(t *tree.Tree) []int {
	out := make([]int, t.Size())
	for _, v := range t.Vertices() {
		out[v] = t.Parent(v)
	}
	return out
}

func seqOf(t *testing.T, c builder.Constructor, opts ...builder.BuilderOption) sequence.Sequence {
	t.Helper()
	tr, err := builder.Build(c, opts...)
	require.NoError(t, err)
	s, err := status.Sequence(tr)
	require.NoError(t, err)
	return s
}

// requireWitness checks that res holds a caterpillar with exactly seq.
func requireWitness(t *testing.T, seq sequence.Sequence, res *caterpillar.Result) {
	t.Helper()
	require.NotNil(t, res)
	require.NotNil(t, res.Tree)
	require.Equal(t, sequence.VertexCount(seq), res.Tree.Size())
	require.True(t, tree.IsCaterpillar(res.Tree))
	got, err := status.Sequence(res.Tree)
	require.NoError(t, err)
	require.True(t, sequence.Equal(seq, got), "want %v, got %v", seq, got)
	require.True(t, sequence.Equal(seq, res.Sequence))
	require.GreaterOrEqual(t, res.Signatures, 1)
}

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) TestSingleVertex() {
	res, err := caterpillar.Reconstruct(sequence.Sequence{0: 1})
	s.Require().NoError(err)
	s.Require().Equal(1, res.Tree.Size())
	s.Require().True(sequence.Equal(sequence.Sequence{0: 1}, res.Sequence))
}

func (s *EngineSuite) TestSingleEdge() {
	res, err := caterpillar.Reconstruct(sequence.Sequence{1: 2})
	s.Require().NoError(err)
	s.Require().Equal([]int{-1, 0}, parents(res.Tree))
}

func (s *EngineSuite) TestStarOfFive() {
	seq := seqOf(s.T(), builder.Star(5))
	s.Require().True(sequence.Equal(sequence.Sequence{4: 1, 7: 4}, seq))

	res, err := caterpillar.Reconstruct(seq)
	s.Require().NoError(err)
	requireWitness(s.T(), seq, res)
	s.Require().Equal([]int{-1, 0, 0, 0, 0}, parents(res.Tree))
	s.Require().Equal(1, res.Stats.States)
}

func (s *EngineSuite) TestPaths() {
	res, err := caterpillar.Reconstruct(sequence.Sequence{4: 2, 6: 2})
	s.Require().NoError(err)
	// 1 - 0 - 2 - 3
	s.Require().Equal([]int{-1, 0, 0, 2}, parents(res.Tree))

	res, err = caterpillar.Reconstruct(sequence.Sequence{6: 1, 7: 2, 10: 2})
	s.Require().NoError(err)
	s.Require().Equal([]int{-1, 0, 1, 0, 3}, parents(res.Tree))
}

func (s *EngineSuite) TestRightEndOpensMidway() {
	// leaves 1,3,0,2 along the backbone: the right end's status lies
	// strictly between two left statuses
	seq := seqOf(s.T(), builder.Caterpillar([]int{1, 3, 0, 2}))
	s.Require().True(sequence.Equal(sequence.Sequence{15: 1, 17: 1, 21: 2, 23: 3, 29: 3}, seq))

	res, err := caterpillar.Reconstruct(seq)
	s.Require().NoError(err)
	requireWitness(s.T(), seq, res)
}

func (s *EngineSuite) TestOddBicentral() {
	_, err := caterpillar.Reconstruct(sequence.Sequence{4: 2, 6: 3})
	s.Require().ErrorIs(err, caterpillar.ErrOddBicentral)
	s.Require().ErrorIs(err, caterpillar.ErrNoCaterpillar)
}

func (s *EngineSuite) TestTooManyCenters() {
	_, err := caterpillar.Reconstruct(sequence.Sequence{3: 3, 5: 1})
	s.Require().ErrorIs(err, caterpillar.ErrTooManyCenters)
	s.Require().ErrorIs(err, caterpillar.ErrNoCaterpillar)
}

func (s *EngineSuite) TestEmptyAndInvalid() {
	_, err := caterpillar.Reconstruct(nil)
	s.Require().ErrorIs(err, caterpillar.ErrEmptySequence)
	s.Require().ErrorIs(err, caterpillar.ErrNoCaterpillar)

	_, err = caterpillar.Reconstruct(sequence.Sequence{-1: 1})
	s.Require().ErrorIs(err, sequence.ErrNegativeStatus)
	_, err = caterpillar.Reconstruct(sequence.Sequence{3: 0})
	s.Require().ErrorIs(err, sequence.ErrBadMultiplicity)
}

func (s *EngineSuite) TestTinyMismatch() {
	for _, seq := range []sequence.Sequence{{2: 2}, {0: 1, 5: 1}, {3: 1}} {
		_, err := caterpillar.Reconstruct(seq)
		s.Require().ErrorIs(err, caterpillar.ErrNoCaterpillar, "%v", seq)
	}
}

func (s *EngineSuite) TestSpiderIsNotACaterpillar() {
	// a center with three legs of length two
	spider := tree.New()
	c, _ := spider.AddVertex(tree.NoVertex)
	for i := 0; i < 3; i++ {
		mid, err := spider.AddVertex(c)
		s.Require().NoError(err)
		_, err = spider.AddVertex(mid)
		s.Require().NoError(err)
	}
	s.Require().False(tree.IsCaterpillar(spider))
	seq, err := status.Sequence(spider)
	s.Require().NoError(err)
	s.Require().True(sequence.Equal(sequence.Sequence{9: 1, 12: 3, 17: 3}, seq))

	_, err = caterpillar.Reconstruct(seq)
	s.Require().ErrorIs(err, caterpillar.ErrNoCaterpillar)
}

func (s *EngineSuite) TestNoBackboneEnd() {
	// the maximum 20 would need a backbone neighbour of status 20-(5-2)=17
	_, err := caterpillar.Reconstruct(sequence.Sequence{4: 1, 20: 4})
	s.Require().ErrorIs(err, caterpillar.ErrNoCaterpillar)
}

func TestRoundTripRandomCaterpillars(t *testing.T) {
	sizes := []int{3, 4, 5, 8, 13, 21, 40, 75}
	for seed := int64(1); seed <= 30; seed++ {
		for _, n := range sizes {
			for _, ctor := range []builder.Constructor{builder.RandomCaterpillar(n), builder.SparseCaterpillar(n)} {
				seq := seqOf(t, ctor, builder.WithSeed(seed))
				res, err := caterpillar.Reconstruct(seq)
				require.NoError(t, err, "seed %d n %d seq %v", seed, n, seq)
				requireWitness(t, seq, res)
			}
		}
	}
}

func TestRoundTripBackboneFractions(t *testing.T) {
	for _, frac := range []float64{0.05, 0.5, 1} {
		for seed := int64(1); seed <= 10; seed++ {
			seq := seqOf(t, builder.RandomCaterpillar(30),
				builder.WithSeed(seed), builder.WithBackboneFraction(frac))
			res, err := caterpillar.Reconstruct(seq)
			require.NoError(t, err)
			requireWitness(t, seq, res)
		}
	}
}

func TestRoundTripSmallLeafVectors(t *testing.T) {
	var vectors [][]int
	var gen func(prefix []int, k int)
	gen = func(prefix []int, k int) {
		if len(prefix) == k {
			vectors = append(vectors, append([]int(nil), prefix...))
			return
		}
		for l := 0; l <= 3; l++ {
			gen(append(prefix, l), k)
		}
	}
	for k := 1; k <= 4; k++ {
		gen(nil, k)
	}

	for _, leaves := range vectors {
		seq := seqOf(t, builder.Caterpillar(leaves))
		if sequence.VertexCount(seq) < 3 {
			continue
		}
		res, err := caterpillar.Reconstruct(seq)
		require.NoError(t, err, "leaves %v", leaves)
		requireWitness(t, seq, res)
	}
}

func TestNeverReturnsAWrongWitness(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		seq := seqOf(t, builder.RandomTree(15), builder.WithSeed(seed))
		res, err := caterpillar.Reconstruct(seq)
		if err != nil {
			require.ErrorIs(t, err, caterpillar.ErrNoCaterpillar)
			continue
		}
		requireWitness(t, seq, res)
	}
	for seed := int64(1); seed <= 60; seed++ {
		seq, err := builder.RandomSequence(20, 3, builder.WithSeed(seed))
		require.NoError(t, err)
		res, err := caterpillar.Reconstruct(seq)
		if err != nil {
			require.ErrorIs(t, err, caterpillar.ErrNoCaterpillar)
			continue
		}
		requireWitness(t, seq, res)
	}
}

func TestDeterminism(t *testing.T) {
	seq := seqOf(t, builder.RandomCaterpillar(60), builder.WithSeed(4))
	a, err := caterpillar.Reconstruct(seq)
	require.NoError(t, err)
	b, err := caterpillar.New().Reconstruct(seq)
	require.NoError(t, err)
	require.Equal(t, parents(a.Tree), parents(b.Tree))
	require.Equal(t, a.Stats, b.Stats)
	require.Equal(t, a.Signatures, b.Signatures)
}

// mirrorInputs mixes feasible and infeasible sequences: merged random
// caterpillar sequences and sequences of unrestricted random trees.
func mirrorInputs(t *testing.T) []sequence.Sequence {
	t.Helper()
	var out []sequence.Sequence
	for seed := int64(1); seed <= 40; seed++ {
		n := 6 + int(seed%17)
		seq, err := builder.RandomSequence(n, 1.5, builder.WithSeed(seed))
		require.NoError(t, err)
		out = append(out, seq, seqOf(t, builder.RandomTree(n), builder.WithSeed(seed)))
	}
	return out
}

func TestMirrorKeepsVerdicts(t *testing.T) {
	accepted, rejected := 0, 0
	for _, seq := range mirrorInputs(t) {
		plain, errPlain := caterpillar.Reconstruct(seq)
		mirrored, errMirror := caterpillar.Reconstruct(seq, caterpillar.WithMirror())
		require.Equal(t, errPlain == nil, errMirror == nil, "%v", seq)
		if errPlain != nil {
			require.ErrorIs(t, errMirror, caterpillar.ErrNoCaterpillar, "%v", seq)
			rejected++
			continue
		}
		accepted++
		requireWitness(t, seq, plain)
		requireWitness(t, seq, mirrored)
		require.Equal(t, plain.Signatures, mirrored.Signatures, "%v", seq)
	}
	require.Positive(t, accepted)
	require.Positive(t, rejected)
}

func TestMirrorKeepsRoundTrips(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		for _, n := range []int{3, 5, 9, 16, 33} {
			seq := seqOf(t, builder.RandomCaterpillar(n), builder.WithSeed(seed))
			res, err := caterpillar.Reconstruct(seq, caterpillar.WithMirror())
			require.NoError(t, err, "seed %d n %d: %v", seed, n, seq)
			requireWitness(t, seq, res)
		}
	}
}

func TestMirrorBuildsTheSameWitness(t *testing.T) {
	// witnesses grow from the center outwards and each frame places the
	// first end before the other, so swapping the ends yields the same tree
	for _, leaves := range [][]int{{2, 0, 1}, {1, 3, 0, 2}, {0, 0, 0, 0, 0}, {3, 1, 1, 3}} {
		seq := seqOf(t, builder.Caterpillar(leaves))
		plain, err := caterpillar.Reconstruct(seq)
		require.NoError(t, err)
		mirrored, err := caterpillar.Reconstruct(seq, caterpillar.WithMirror())
		require.NoError(t, err)
		require.Equal(t, parents(plain.Tree), parents(mirrored.Tree), "%v", leaves)
	}
	seq := seqOf(t, builder.Caterpillar([]int{2, 0, 1}))
	res, err := caterpillar.Reconstruct(seq, caterpillar.WithMirror())
	require.NoError(t, err)
	require.Equal(t, []int{-1, 0, 1, 1, 0, 4}, parents(res.Tree))
}

func TestBudgetExceeded(t *testing.T) {
	seq := seqOf(t, builder.Caterpillar([]int{1, 3, 0, 2}))
	_, err := caterpillar.Reconstruct(seq, caterpillar.WithMaxStates(1))
	require.ErrorIs(t, err, caterpillar.ErrBudgetExceeded)
	require.False(t, errors.Is(err, caterpillar.ErrNoCaterpillar))

	res, err := caterpillar.Reconstruct(seq, caterpillar.WithMaxStates(1000))
	require.NoError(t, err)
	require.LessOrEqual(t, res.Stats.States, 1000)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := caterpillar.Reconstruct(sequence.Sequence{4: 1, 7: 4}, caterpillar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDebugTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	seq := seqOf(t, builder.Caterpillar([]int{1, 3, 0, 2}))
	res, err := caterpillar.Reconstruct(seq, caterpillar.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, res.Stats.States, logs.FilterMessage("expand").Len())
	require.Equal(t, 1, logs.FilterMessage("search done").Len())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { caterpillar.WithMaxStates(-1) })
	require.NotPanics(t, func() { caterpillar.WithLogger(nil) })
}
