package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transmission/tree"
)

// fromParents builds a tree where parents[i] is the parent of vertex i.
func fromParents(t *testing.T, parents ...int) *tree.Tree {
	t.Helper()
	tr := tree.New()
	for _, p := range parents {
		_, err := tr.AddVertex(p)
		require.NoError(t, err)
	}
	return tr
}

func TestIsCaterpillar(t *testing.T) {
	tests := []struct {
		name    string
		parents []int
		want    bool
	}{
		{"empty", nil, true},
		{"single", []int{tree.NoVertex}, true},
		{"edge", []int{tree.NoVertex, 0}, true},
		{"star", []int{tree.NoVertex, 0, 0, 0, 0}, true},
		{"path", []int{tree.NoVertex, 0, 1, 2, 3}, true},
		{"caterpillar", []int{tree.NoVertex, 0, 1, 0, 1, 1, 2}, true},
		// spider with three legs of length 2: center has three inner neighbours
		{"spider", []int{tree.NoVertex, 0, 0, 0, 1, 2, 3}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tree.IsCaterpillar(fromParents(t, tc.parents...)))
		})
	}
}

func TestBackbone(t *testing.T) {
	// path 0-1-2-3-4 rooted in the middle after a reroot
	tr := fromParents(t, tree.NoVertex, 0, 1, 2, 3)
	require.NoError(t, tr.Reroot(2))
	bb, err := tree.Backbone(tr)
	require.NoError(t, err)
	require.Len(t, bb, 3)
	// either orientation is a valid backbone order
	if bb[0] != 1 {
		bb[0], bb[2] = bb[2], bb[0]
	}
	require.Equal(t, []int{1, 2, 3}, bb)

	bb, err = tree.Backbone(fromParents(t, tree.NoVertex, 0))
	require.NoError(t, err)
	require.Empty(t, bb)

	_, err = tree.Backbone(fromParents(t, tree.NoVertex, 0, 0, 0, 1, 2, 3))
	require.ErrorIs(t, err, tree.ErrNotCaterpillar)

	_, err = tree.Backbone(tree.New())
	require.ErrorIs(t, err, tree.ErrEmptyTree)
}
