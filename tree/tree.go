// SPDX-License-Identifier: MIT
// Package: transmission/tree
//
// tree.go - construction, rerooting, cloning and read-only queries.
//
// Contract:
//   - AddVertex with NoVertex creates the root of an empty tree and attaches
//     to the root otherwise.
//   - Reroot reverses parent links along one path and touches nothing else.
//   - Clone preserves vertex ids.

package tree

import "fmt"

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: NoVertex}
}

// NewWithRoot returns a tree holding a single vertex, and that vertex's id.
func NewWithRoot() (*Tree, int) {
	t := New()
	root, _ := t.AddVertex(NoVertex) // cannot fail on an empty tree
	return t, root
}

// AddVertex creates a vertex and attaches it below parent.
// If parent is NoVertex the new vertex becomes the root of an empty tree,
// or a child of the current root otherwise.
//
// Complexity: O(1) amortized.
func (t *Tree) AddVertex(parent int) (int, error) {
	id := len(t.vertices)

	if parent == NoVertex {
		if t.root == NoVertex {
			// first vertex: it becomes the root
			t.vertices = append(t.vertices, vertex{parent: NoVertex})
			t.root = id
			return id, nil
		}
		parent = t.root
	}
	if !t.Has(parent) {
		return NoVertex, fmt.Errorf("AddVertex(parent=%d): %w", parent, ErrVertexNotFound)
	}

	t.vertices = append(t.vertices, vertex{parent: parent})
	t.vertices[parent].children = append(t.vertices[parent].children, id)

	return id, nil
}

// AddLeaves attaches k new children to parent and returns their ids.
func (t *Tree) AddLeaves(parent, k int) ([]int, error) {
	ids := make([]int, 0, k)
	for i := 0; i < k; i++ {
		id, err := t.AddVertex(parent)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Reroot makes v the root. Only the links on the path from v to the old root
// are reversed; every other parent/child relation stays as it was.
func (t *Tree) Reroot(v int) error {
	if !t.Has(v) {
		return fmt.Errorf("Reroot(%d): %w", v, ErrVertexNotFound)
	}

	// path[0] = v, path[len-1] = old root
	path := []int{v}
	for p := t.vertices[v].parent; p != NoVertex; p = t.vertices[p].parent {
		path = append(path, p)
	}

	// Reverse links from the old root downwards.
	for i := len(path) - 1; i > 0; i-- {
		parent, child := path[i], path[i-1]
		t.detachChild(parent, child)
		t.vertices[child].children = append(t.vertices[child].children, parent)
		t.vertices[parent].parent = child
	}
	t.vertices[v].parent = NoVertex
	t.root = v

	return nil
}

// detachChild removes child from parent's child list, keeping the order of
// the remaining children.
func (t *Tree) detachChild(parent, child int) {
	kids := t.vertices[parent].children
	for i, c := range kids {
		if c == child {
			t.vertices[parent].children = append(kids[:i:i], kids[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of t. Vertex ids are preserved, so ids held by
// the caller address the corresponding vertices of the copy.
//
// Complexity: O(V).
func (t *Tree) Clone() *Tree {
	out := &Tree{
		vertices: make([]vertex, len(t.vertices)),
		root:     t.root,
	}
	for i, v := range t.vertices {
		out.vertices[i].parent = v.parent
		if len(v.children) > 0 {
			out.vertices[i].children = append([]int(nil), v.children...)
		}
	}
	return out
}

// Root returns the root id, or NoVertex for an empty tree.
func (t *Tree) Root() int { return t.root }

// Size returns the number of vertices.
func (t *Tree) Size() int { return len(t.vertices) }

// Empty reports whether the tree has no vertices.
func (t *Tree) Empty() bool { return len(t.vertices) == 0 }

// Has reports whether v is a vertex of t.
func (t *Tree) Has(v int) bool { return v >= 0 && v < len(t.vertices) }

// Parent returns the parent of v (NoVertex for the root or unknown ids).
func (t *Tree) Parent(v int) int {
	if !t.Has(v) {
		return NoVertex
	}
	return t.vertices[v].parent
}

// Children returns the children of v in insertion order.
// The returned slice is owned by the tree and must not be modified.
func (t *Tree) Children(v int) []int {
	if !t.Has(v) {
		return nil
	}
	return t.vertices[v].children
}

// IsRoot reports whether v is the root.
func (t *Tree) IsRoot(v int) bool { return t.Has(v) && t.vertices[v].parent == NoVertex }

// IsLeaf reports whether v has no children (rooted sense).
func (t *Tree) IsLeaf(v int) bool { return t.Has(v) && len(t.vertices[v].children) == 0 }

// Degree returns the number of neighbours of v: its children plus its
// parent unless v is the root.
func (t *Tree) Degree(v int) int {
	if !t.Has(v) {
		return 0
	}
	d := len(t.vertices[v].children)
	if t.vertices[v].parent != NoVertex {
		d++
	}
	return d
}

// Neighbors returns the parent (if any) followed by the children of v.
func (t *Tree) Neighbors(v int) []int {
	if !t.Has(v) {
		return nil
	}
	out := make([]int, 0, t.Degree(v))
	if p := t.vertices[v].parent; p != NoVertex {
		out = append(out, p)
	}
	return append(out, t.vertices[v].children...)
}

// Vertices returns all vertex ids in ascending order.
func (t *Tree) Vertices() []int {
	out := make([]int, len(t.vertices))
	for i := range out {
		out[i] = i
	}
	return out
}
