// SPDX-License-Identifier: MIT
// Package: transmission/render
//
// outline.go - labelled outline drawn by lipgloss/tree.

package render

import (
	"strconv"

	ltree "github.com/charmbracelet/lipgloss/tree"

	"github.com/katalvlaran/transmission/tree"
)

// Outline renders t as a labelled outline. label names a vertex; nil labels
// every vertex with its id.
func Outline(t *tree.Tree, label func(v int) string) string {
	if t == nil || t.Empty() {
		return ""
	}
	if label == nil {
		label = strconv.Itoa
	}
	return outline(t, t.Root(), label).String()
}

func outline(t *tree.Tree, v int, label func(int) string) *ltree.Tree {
	node := ltree.Root(label(v))
	for _, c := range t.Children(v) {
		if t.IsLeaf(c) {
			node.Child(label(c))
			continue
		}
		node.Child(outline(t, c, label))
	}
	return node
}
