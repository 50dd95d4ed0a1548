// SPDX-License-Identifier: MIT

package status

import (
	"fmt"

	"github.com/katalvlaran/transmission/tree"
)

// Naive computes every status by a breadth-first search from each vertex.
// It is quadratic and exists as an independent check of Compute.
func Naive(t *tree.Tree) (map[int]int, error) {
	if t == nil {
		return nil, fmt.Errorf("Naive: %w", ErrNilTree)
	}
	n := t.Size()
	out := make(map[int]int, n)
	dist := make([]int, n)
	queue := make([]int, 0, n)
	for _, src := range t.Vertices() {
		for i := range dist {
			dist[i] = -1
		}
		dist[src] = 0
		queue = append(queue[:0], src)
		total := 0
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			total += dist[v]
			for _, u := range t.Neighbors(v) {
				if dist[u] < 0 {
					dist[u] = dist[v] + 1
					queue = append(queue, u)
				}
			}
		}
		out[src] = total
	}
	return out, nil
}
