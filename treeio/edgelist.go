// SPDX-License-Identifier: MIT
// Package: transmission/treeio
//
// edgelist.go - edge-list codec.

package treeio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/transmission/tree"
)

// Read parses an edge list. A parent name not seen before is added with
// tree.NoVertex: it becomes the root of the empty tree and hangs below the
// root otherwise.
func Read(r io.Reader) (*tree.Tree, error) {
	t := tree.New()
	ids := make(map[int]int)
	sc := bufio.NewScanner(r)
	line := 0

	vertex := func(name int) (int, error) {
		if id, ok := ids[name]; ok {
			return id, nil
		}
		id, err := t.AddVertex(tree.NoVertex)
		if err != nil {
			return tree.NoVertex, err
		}
		ids[name] = id
		return id, nil
	}

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("Read: line %d: %q: %w", line, sc.Text(), ErrMalformedEdge)
		}
		names := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("Read: line %d: %q: %w", line, f, ErrMalformedEdge)
			}
			names[i] = v
		}

		parent, err := vertex(names[0])
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		if len(names) == 1 {
			continue
		}
		if _, seen := ids[names[1]]; seen {
			return nil, fmt.Errorf("Read: line %d: child %d: %w", line, names[1], ErrDuplicateVertex)
		}
		child, err := t.AddVertex(parent)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		ids[names[1]] = child
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return t, nil
}

// Write renders t as an edge list in breadth-first order with fresh names.
// An empty tree writes nothing; a single vertex writes "0".
func Write(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Empty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	order := t.LevelOrder(t.Root())
	name := make(map[int]int, len(order))
	for i, v := range order {
		name[v] = i
	}
	if len(order) == 1 {
		fmt.Fprintln(bw, 0)
	}
	for _, v := range order {
		for _, c := range t.Children(v) {
			fmt.Fprintf(bw, "%d %d\n", name[v], name[c])
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}

// ReadFile reads the edge list stored at path.
func ReadFile(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile stores t at path, replacing any existing file.
func WriteFile(path string, t *tree.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
