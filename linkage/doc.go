// SPDX-License-Identifier: MIT

// Package linkage measures how tightly each cluster holds together.
//
// A cluster formed by single linkage is exactly a tree of its minimum
// spanning forest. The longest edge of that tree is the cluster's linkage
// height: the smallest threshold at which the cluster is still one piece.
// A height close to the run threshold means a single new sample could split
// or join the cluster on the next run.
//
//   - Forest(g) returns the minimum spanning forest (Kruskal, union-find with
//     path compression and union by rank).
//   - Heights(g) returns the linkage height per component, keyed by the
//     component's smallest member.
//
// Determinism: edges are sorted stably by distance after Graph.Edges()
// (ascending edge ID), so ties always break the same way.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
package linkage
