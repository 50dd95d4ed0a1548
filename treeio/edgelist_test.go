package treeio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transmission/builder"
	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/status"
	"github.com/katalvlaran/transmission/tree"
	"github.com/katalvlaran/transmission/treeio"
)

func parents(t *tree.Tree) []int {
	out := make([]int, t.Size())
	for _, v := range t.Vertices() {
		out[v] = t.Parent(v)
	}
	return out
}

func TestWriteBreadthFirst(t *testing.T) {
	tr, err := builder.Build(builder.Caterpillar([]int{2, 0, 1}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, treeio.Write(&buf, tr))
	require.Equal(t, "0 1\n0 2\n0 3\n1 4\n4 5\n", buf.String())

	back, err := treeio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, []int{-1, 0, 0, 0, 1, 4}, parents(back))
}

func TestReadFirstParentIsRoot(t *testing.T) {
	tr, err := treeio.Read(strings.NewReader("7 3\n\n3 9\n7 1\n"))
	require.NoError(t, err)
	require.Equal(t, 0, tr.Root())
	require.Equal(t, []int{-1, 0, 1, 0}, parents(tr))
}

func TestSingleVertex(t *testing.T) {
	tr, _ := tree.NewWithRoot()
	var buf bytes.Buffer
	require.NoError(t, treeio.Write(&buf, tr))
	require.Equal(t, "0\n", buf.String())

	back, err := treeio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, back.Size())

	var empty bytes.Buffer
	require.NoError(t, treeio.Write(&empty, tree.New()))
	require.Zero(t, empty.Len())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"not a number", "0 x\n", treeio.ErrMalformedEdge},
		{"negative", "0 -1\n", treeio.ErrMalformedEdge},
		{"three fields", "0 1 2\n", treeio.ErrMalformedEdge},
		{"child twice", "0 1\n0 1\n", treeio.ErrDuplicateVertex},
		{"child is the root", "0 1\n1 0\n", treeio.ErrDuplicateVertex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := treeio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFileRoundTripKeepsStatuses(t *testing.T) {
	dir := t.TempDir()
	for seed := int64(1); seed <= 10; seed++ {
		tr, err := builder.Build(builder.RandomTree(40), builder.WithSeed(seed))
		require.NoError(t, err)
		path := filepath.Join(dir, "t.tree")
		require.NoError(t, treeio.WriteFile(path, tr))

		back, err := treeio.ReadFile(path)
		require.NoError(t, err)
		want, err := status.Sequence(tr)
		require.NoError(t, err)
		got, err := status.Sequence(back)
		require.NoError(t, err)
		require.True(t, sequence.Equal(want, got))
	}

	_, err := treeio.ReadFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
