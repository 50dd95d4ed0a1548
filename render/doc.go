// SPDX-License-Identifier: MIT

// Package render draws trees as text.
//
//   - Vertical: top-down drawing, one row of vertices ("o") per depth
//     followed by a row of connectors ("|" for a single child, "/--\" spanning
//     several). Every vertex sits centred over its children.
//   - Indent: compact sideways drawing, "o-o" for a first child and "|-"
//     rows for its siblings.
//   - Outline: labelled outline with box-drawing branches, rendered by
//     lipgloss/tree.
//
// All renderers start at the root and never modify the tree.
package render
