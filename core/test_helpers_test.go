// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/lvcluster/core"
)

// Common sample IDs used across core tests.
const (
	SampleEmpty = ""

	SampleA = "S-A"
	SampleB = "S-B"
	SampleC = "S-C"
	SampleD = "S-D"
)

// Common distances used across core tests (avoid magic numbers in test bodies).
const (
	Dist0 = 0.0
	Dist3 = 3.0
	Dist5 = 5.0
)

// newChain builds S-A—S-B—S-C with S-D isolated.
func newChain() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge(SampleA, SampleB, Dist3)
	_, _ = g.AddEdge(SampleB, SampleC, Dist5)
	_ = g.AddVertex(SampleD)

	return g
}
