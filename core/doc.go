// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory sample similarity graph
// used by clustering.
//
// The Graph G = (V,E) is undirected:
//
//   - V is the set of samples; each Vertex carries the labels joined in from
//     the previous run (Curated, Final; "" means no label).
//   - E holds the distance pairs that survived the clustering threshold.
//     Edges are mirrored in adjacencyList[to][from] so neighborhood queries
//     work from either endpoint.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Edge policy: AddEdge(v,v) fails with ErrLoopNotAllowed, and a second
// AddEdge(a,b) or AddEdge(b,a) fails with ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                     // O(1)
//	SetLabels(id, curated, final string) error     // O(1)
//	RemoveVertex(id string) error                  // O(deg(v))
//	Vertex(id string) (Vertex, error)              // O(1), copy
//
//	// Edges
//	AddEdge(from, to string, distance float64) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // sorted by Edge.ID
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // sorted by Edge.ID
//	Degree(id string) (int, error)
//	Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadDistance         – negative or NaN distance
//	ErrLoopNotAllowed      – sample paired with itself
//	ErrMultiEdgeNotAllowed – second edge between the same pair
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
