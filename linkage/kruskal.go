// SPDX-License-Identifier: MIT

package linkage

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvcluster/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("linkage: graph is nil")

// dsu is a disjoint-set forest over sample IDs.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU(ids []string) *dsu {
	d := &dsu{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// find returns the root of u, compressing the path iteratively.
func (d *dsu) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *dsu) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

// Forest computes the minimum spanning forest of g. Unlike a spanning tree
// it never fails on a disconnected graph: each component contributes its
// own tree, and isolated samples contribute nothing.
//
// Steps:
//  1. Collect non-loop edges from g.Edges() (ascending ID).
//  2. Stable-sort them by distance.
//  3. Keep every edge joining two different sets; stop at |V|-1 edges.
func Forest(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	all := g.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Distance < edges[j].Distance })

	sets := newDSU(vertices)
	var forest []core.Edge
	for _, e := range edges {
		if sets.union(e.From, e.To) {
			forest = append(forest, *e)
			if len(forest) == len(vertices)-1 {
				break
			}
		}
	}

	return forest, nil
}

// Heights returns the linkage height of every component, keyed by the
// component's smallest sample. Singletons have height 0.
func Heights(g *core.Graph) (map[string]float64, error) {
	forest, err := Forest(g)
	if err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	sets := newDSU(vertices)
	for _, e := range forest {
		sets.union(e.From, e.To)
	}

	// smallest member per root; vertices are sorted so the first seen wins.
	key := make(map[string]string)
	heights := make(map[string]float64)
	for _, v := range vertices {
		root := sets.find(v)
		if _, ok := key[root]; !ok {
			key[root] = v
			heights[v] = 0
		}
	}
	for _, e := range forest {
		k := key[sets.find(e.From)]
		if e.Distance > heights[k] {
			heights[k] = e.Distance
		}
	}

	return heights, nil
}
