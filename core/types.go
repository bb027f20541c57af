// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog (including label attributes).
//   - muEdgeAdj guards the edge catalog and adjacency buckets.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided sample ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadDistance indicates a negative or NaN distance.
	ErrBadDistance = errors.New("core: distance must be a non-negative number")

	// ErrLoopNotAllowed indicates a sample was paired with itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same two samples.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is one sample in the similarity graph.
//
// Curated and Final carry the labels joined in from the previous run.
// The empty string means "no label".
type Vertex struct {
	// ID is the sample identifier.
	ID string

	// Curated is the human-assigned cluster label, if any.
	Curated string

	// Final is the label accepted by the previous automated run, if any.
	Final string
}

// HasLabel reports whether the vertex carries either kind of prior label.
func (v *Vertex) HasLabel() bool { return v.Curated != "" || v.Final != "" }

// Edge is an undirected link between two samples whose distance survived
// the clustering threshold.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint sample IDs; their order carries no meaning.
	From string
	To   string

	// Distance is the pairwise genetic distance between the endpoints.
	Distance float64
}

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is an undirected sample similarity graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // sample ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}, mirrored for every edge.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. Self-loops and parallel edges are
// always rejected.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
}
