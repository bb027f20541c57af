// SPDX-License-Identifier: MIT

// File: bfs.go
// Role: the breadth-first walker behind Components.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/core"
)

// walker encapsulates mutable BFS state shared across seeds.
type walker struct {
	graph   *core.Graph
	opts    options
	queue   []string
	visited map[string]bool
}

func newWalker(g *core.Graph, o options, n int) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
	}
}

// walk visits every vertex reachable from start and returns them in visit
// order. Already visited vertices are never returned again.
func (w *walker) walk(start string) ([]string, error) {
	var order []string
	w.visited[start] = true
	w.queue = append(w.queue[:0], start)

	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return nil, w.opts.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, id)

		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				w.queue = append(w.queue, nbr)
			}
		}
	}

	return order, nil
}
