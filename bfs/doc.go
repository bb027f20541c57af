// SPDX-License-Identifier: MIT

// Package bfs enumerates the connected components of a core.Graph with a
// breadth-first walker. This is the single-linkage partition used by
// clustering: two samples share a component exactly when a chain of
// within-threshold pairs links them.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and Components seeds from the sorted
//	vertex list, so component order and membership are reproducible.
//
// Cancellation
//
//	WithContext(ctx) is checked before every dequeue.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V log V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrNeighbors  if core.NeighborIDs fails for any vertex.
//   - ctx.Err()     when the context is cancelled.
package bfs
