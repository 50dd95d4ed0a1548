// SPDX-License-Identifier: MIT
// Package: transmission/tree
//
// walk.go - iterative depth-first traversal with hooks and cancellation.
//
// Contract:
//   - Walk visits every vertex of the subtree below `from` exactly once.
//   - OnVisit fires in pre-order, OnExit in post-order; children are
//     processed in insertion order.
//   - A hook error aborts the walk and is returned wrapped with the vertex id.
//   - The context is polled once per vertex.
//   - The stack is explicit, so arbitrarily deep trees (long paths) are safe.

package tree

import (
	"context"
	"fmt"
)

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds the traversal hooks and limits.
type WalkOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, runs after all descendants of a vertex are done (post-order).
	OnExit func(v, depth int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultWalkOptions returns options with a background context, no hooks and
// no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// frame is one entry of the explicit traversal stack.
type frame struct {
	v     int // vertex being expanded
	depth int // distance from the start vertex
	next  int // index of the next child to descend into
}

// Walk traverses the subtree rooted at from depth-first.
func (t *Tree) Walk(from int, opts ...WalkOption) error {
	if !t.Has(from) {
		return fmt.Errorf("Walk(%d): %w", from, ErrVertexNotFound)
	}

	wopts := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	stack := []frame{{v: from}}
	if err := t.enter(&wopts, from, 0); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := t.vertices[top.v].children

		// descend into the next child unless the depth limit forbids it
		if top.next < len(kids) && (wopts.MaxDepth < 0 || top.depth < wopts.MaxDepth) {
			child := kids[top.next]
			top.next++
			if err := t.enter(&wopts, child, top.depth+1); err != nil {
				return err
			}
			stack = append(stack, frame{v: child, depth: top.depth + 1})
			continue
		}

		// all children done: post-order
		if wopts.OnExit != nil {
			if err := wopts.OnExit(top.v, top.depth); err != nil {
				return fmt.Errorf("Walk: OnExit(%d): %w", top.v, err)
			}
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// enter polls the context and fires the pre-order hook for v.
func (t *Tree) enter(o *WalkOptions, v, depth int) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if o.OnVisit != nil {
		if err := o.OnVisit(v, depth); err != nil {
			return fmt.Errorf("Walk: OnVisit(%d): %w", v, err)
		}
	}
	return nil
}

// PreOrder returns the vertices of the subtree below from in pre-order.
// Unknown ids yield nil.
func (t *Tree) PreOrder(from int) []int {
	if !t.Has(from) {
		return nil
	}
	out := make([]int, 0, len(t.vertices))
	stack := []int{from}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)
		kids := t.vertices[v].children
		// push in reverse so the first child is popped first
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

// PostOrder returns the vertices of the subtree below from in post-order.
// Unknown ids yield nil.
func (t *Tree) PostOrder(from int) []int {
	if !t.Has(from) {
		return nil
	}
	// A pre-order that takes children last-to-first, reversed, is the
	// post-order that takes children first-to-last.
	out := make([]int, 0, len(t.vertices))
	stack := []int{from}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)
		stack = append(stack, t.vertices[v].children...)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// LevelOrder returns the vertices of the subtree below from in breadth-first
// order, children in insertion order.
func (t *Tree) LevelOrder(from int) []int {
	if !t.Has(from) {
		return nil
	}
	out := make([]int, 0, len(t.vertices))
	out = append(out, from)
	for head := 0; head < len(out); head++ {
		out = append(out, t.vertices[out[head]].children...)
	}
	return out
}
