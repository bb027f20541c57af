// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of the graph's catalog sizes.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	CuratedCount  int // vertices carrying a curated label
	FinalCount    int // vertices carrying a previous-run final label
	IsolatedCount int // vertices without any incident edge
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot vertex and label counts.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and isolated vertices.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	stats := GraphStats{VertexCount: len(g.vertices)}
	for _, v := range g.vertices {
		if v.Curated != "" {
			stats.CuratedCount++
		}
		if v.Final != "" {
			stats.FinalCount++
		}
	}

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for id := range g.vertices {
		isolated := true
		for _, edgeSet := range g.adjacencyList[id] {
			if len(edgeSet) > 0 {
				isolated = false
				break
			}
		}
		if isolated {
			stats.IsolatedCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
