// SPDX-License-Identifier: MIT
// Package: transmission/render
//
// vertical.go - top-down rendering.
//
// Layout: every leaf takes one column, leaves left to right in pre-order;
// an inner vertex sits at the midpoint (rounded down) of its leftmost and
// rightmost child.

package render

import (
	"strings"

	"github.com/katalvlaran/transmission/tree"
)

// Vertical renders t top-down. Each depth produces two lines: the vertices
// and the connectors below them (empty for the deepest level).
// An empty tree renders as the empty string.
func Vertical(t *tree.Tree) string {
	if t == nil || t.Empty() {
		return ""
	}
	col := columns(t)

	var b strings.Builder
	layer := []int{t.Root()}
	for len(layer) > 0 {
		var (
			next  []int
			spans [][2]int
			x     int
		)
		for _, v := range layer {
			x = pad(&b, x, col.MustGet(v))
			b.WriteByte('o')
			x++
			kids := t.Children(v)
			if len(kids) == 0 {
				continue
			}
			lo, hi := col.MustGet(kids[0]), col.MustGet(kids[len(kids)-1])
			spans = append(spans, [2]int{lo, hi})
			next = append(next, kids...)
		}
		b.WriteByte('\n')

		x = 0
		for _, sp := range spans {
			x = pad(&b, x, sp[0])
			if sp[0] == sp[1] {
				b.WriteByte('|')
				x++
				continue
			}
			b.WriteByte('/')
			b.WriteString(strings.Repeat("-", sp[1]-sp[0]-1))
			b.WriteByte('\\')
			x = sp[1] + 1
		}
		b.WriteByte('\n')
		layer = next
	}
	return b.String()
}

// columns assigns a column to every vertex.
func columns(t *tree.Tree) *tree.Slots[int] {
	leaves := tree.NewSlots[int](t)
	start := tree.NewSlots[int](t) // first column of the vertex's subtree
	col := tree.NewSlots[int](t)
	defer leaves.ClearAll()
	defer start.ClearAll()

	_ = t.Walk(t.Root(), tree.WithOnExit(func(v, _ int) error {
		n := 0
		for _, c := range t.Children(v) {
			n += leaves.MustGet(c)
		}
		leaves.Set(v, max(n, 1))
		return nil
	}))

	start.Set(t.Root(), 0)
	_ = t.Walk(t.Root(),
		tree.WithOnVisit(func(v, _ int) error {
			// children take consecutive column ranges, one column per leaf
			at := start.MustGet(v)
			for _, c := range t.Children(v) {
				start.Set(c, at)
				at += leaves.MustGet(c)
			}
			return nil
		}),
		tree.WithOnExit(func(v, _ int) error {
			kids := t.Children(v)
			if len(kids) == 0 {
				col.Set(v, start.MustGet(v))
				return nil
			}
			col.Set(v, (col.MustGet(kids[0])+col.MustGet(kids[len(kids)-1]))/2)
			return nil
		}),
	)
	return col
}

// pad writes spaces until column x reaches want and returns the new column.
func pad(b *strings.Builder, x, want int) int {
	if want > x {
		b.WriteString(strings.Repeat(" ", want-x))
		return want
	}
	return x
}
