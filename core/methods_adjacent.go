// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given sample.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect incident edges from adjacencyList[id] and sort by Edge.ID.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the samples adjacent to id, sorted ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.Other(id))
	}
	sort.Strings(ids)

	return ids, nil
}

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// ensureAdjacency allocates the nested bucket for from→to.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from both mirrored buckets.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after removals.
// Must be called ONLY under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
