// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: similarity graph construction from a distance table.

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcluster/core"
	"github.com/katalvlaran/lvcluster/dataset"
)

// IsolatedPolicy decides the fate of samples whose every distance exceeds
// the threshold.
type IsolatedPolicy int

const (
	// IsolatedSingleton keeps such samples as one-member components; they
	// are resolved and named like any other component.
	IsolatedSingleton IsolatedPolicy = iota

	// IsolatedDrop removes such samples from the graph, and therefore from
	// the output.
	IsolatedDrop
)

// String returns the flag spelling of the policy.
func (p IsolatedPolicy) String() string {
	if p == IsolatedDrop {
		return "drop"
	}

	return "singleton"
}

// BuildOption configures BuildGraph.
type BuildOption func(*buildOptions)

type buildOptions struct {
	isolated IsolatedPolicy
}

// WithIsolated selects the isolated-sample policy (default IsolatedSingleton).
func WithIsolated(p IsolatedPolicy) BuildOption {
	return func(o *buildOptions) { o.isolated = p }
}

// BuildStats summarizes graph construction.
type BuildStats struct {
	Pairs      int      // distance rows seen
	Kept       int      // rows that became edges
	Duplicates int      // rows repeating an existing edge (including b,a after a,b)
	SelfPairs  int      // rows pairing a sample with itself
	Dropped    []string // samples removed by IsolatedDrop, sorted
}

// BuildGraph builds the undirected similarity graph.
//
// Implementation:
//   - Stage 1: Register every sample named in distances (the node universe).
//   - Stage 2: Add an edge for each pair with distance <= threshold.
//   - Stage 3: Left-join prev labels onto the vertices; unknown samples stay unlabelled.
//   - Stage 4: Under IsolatedDrop, remove vertices without edges.
//
// Errors:
//   - ErrBadThreshold for a negative or NaN threshold.
//   - core errors for malformed pairs (empty IDs, negative distances).
func BuildGraph(distances []dataset.Distance, prev *dataset.Clustering, threshold float64, opts ...BuildOption) (*core.Graph, BuildStats, error) {
	var stats BuildStats
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, stats, ErrBadThreshold
	}
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph()
	for _, s := range dataset.Samples(distances) {
		if err := g.AddVertex(s); err != nil {
			return nil, stats, fmt.Errorf("cluster: add sample %q: %w", s, err)
		}
	}

	for _, d := range distances {
		stats.Pairs++
		if d.Sample1 == d.Sample2 {
			stats.SelfPairs++
			continue
		}
		if d.Value > threshold {
			continue
		}
		if g.HasEdge(d.Sample1, d.Sample2) {
			stats.Duplicates++
			continue
		}
		if _, err := g.AddEdge(d.Sample1, d.Sample2, d.Value); err != nil {
			return nil, stats, fmt.Errorf("cluster: add pair %s-%s: %w", d.Sample1, d.Sample2, err)
		}
		stats.Kept++
	}

	if prev != nil {
		for _, s := range g.Vertices() {
			if r, ok := prev.Lookup(s); ok {
				if err := g.SetLabels(s, r.Curated, r.Final); err != nil {
					return nil, stats, err
				}
			}
		}
	}

	if o.isolated == IsolatedDrop {
		for _, s := range g.Vertices() {
			deg, err := g.Degree(s)
			if err != nil {
				return nil, stats, err
			}
			if deg == 0 {
				if err := g.RemoveVertex(s); err != nil {
					return nil, stats, err
				}
				stats.Dropped = append(stats.Dropped, s)
			}
		}
	}

	return g, stats, nil
}
