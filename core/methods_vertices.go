// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, label attributes & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a sample vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// SetLabels attaches the previous-run labels to an existing vertex.
// Empty strings mean "no label" and overwrite whatever was stored before.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SetLabels(id, curated, final string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Curated = curated
	v.Final = final

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// RemoveVertex deletes a vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate ID and existence.
//   - Stage 2: Under muEdgeAdj, drop incident edges from the catalog and the mirrored buckets.
//   - Stage 3: Remove the vertex from the catalog.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; !e.IsNil() {
				removeAdjacency(g, e)
				delete(g.edges, eid)
			}
		}
	}
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)
	g.muEdgeAdj.Unlock()

	delete(g.vertices, id)

	return nil
}

// Vertices returns all sample IDs sorted lexicographically ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := 0
	for _, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			deg++
		}
	}

	return deg, nil
}
