// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge creation & queries: AddEdge/HasEdge/Edges/EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - AddEdge mutates under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge links two samples with the given distance.
//
// Steps:
//  1. Validate IDs and distance, reject self-loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge between the same pair.
//  4. Generate eid atomically, store the edge and mirror its adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadDistance, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if distance < 0 || math.IsNaN(distance) {
		return "", ErrBadDistance
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Distance: distance}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	ensureAdjacency(g, to, from)
	g.adjacencyList[to][from][eid] = struct{}{}

	return eid, nil
}

// HasEdge reports whether at least one edge links from and to.
// Adjacency is mirrored, so the argument order does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
// Safe for concurrent callers; atomic.AddUint64 reserves the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeIDLess orders "e2" before "e10" by comparing the numeric suffix.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
