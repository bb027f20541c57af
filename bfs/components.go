// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/katalvlaran/lvcluster/core"
)

// Components partitions g into its connected components.
//
// Seeds are taken from g.Vertices() in ascending order, so components come
// out ordered by their smallest member, and each component's members are
// sorted ascending. Isolated vertices form singleton components.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ctx.Err() when the WithContext context is cancelled.
//   - ErrNeighbors if the graph fails a neighbor lookup.
//
// Time:   O(V log V + E).
// Memory: O(V).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.Vertices()
	w := newWalker(g, o, len(vertices))
	var comps [][]string

	for _, start := range vertices {
		if w.visited[start] {
			continue
		}
		comp, err := w.walk(start)
		if err != nil {
			return nil, err
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
