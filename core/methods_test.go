// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(SampleEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(SampleA))
	assert.True(t, g.HasVertex(SampleA))

	// duplicate insert is a no-op
	require.NoError(t, g.AddVertex(SampleA))
	assert.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(SampleEmpty), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(SampleB), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(SampleA))
	assert.False(t, g.HasVertex(SampleA))
}

func TestGraph_SetLabels(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetLabels(SampleA, "A001", ""), core.ErrVertexNotFound)

	require.NoError(t, g.AddVertex(SampleA))
	require.NoError(t, g.SetLabels(SampleA, "A001", "A002"))

	v, err := g.Vertex(SampleA)
	require.NoError(t, err)
	assert.Equal(t, "A001", v.Curated)
	assert.Equal(t, "A002", v.Final)
	assert.True(t, v.HasLabel())

	require.NoError(t, g.SetLabels(SampleA, "", ""))
	v, err = g.Vertex(SampleA)
	require.NoError(t, err)
	assert.False(t, v.HasLabel())

	_, err = g.Vertex(SampleB)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(SampleEmpty, SampleB, Dist3)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(SampleA, SampleB, -1)
	assert.ErrorIs(t, err, core.ErrBadDistance)

	_, err = g.AddEdge(SampleA, SampleB, math.NaN())
	assert.ErrorIs(t, err, core.ErrBadDistance)

	_, err = g.AddEdge(SampleA, SampleA, Dist0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge(SampleA, SampleB, Dist3)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	// mirrored pair is a parallel edge in an undirected graph
	_, err = g.AddEdge(SampleB, SampleA, Dist3)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge(SampleA, SampleB))
	assert.True(t, g.HasEdge(SampleB, SampleA))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RejectedEdgesLeaveGraphUnchanged(t *testing.T) {
	g := newChain()
	before := g.Edges()

	_, err := g.AddEdge(SampleD, SampleD, Dist0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(SampleC, SampleB, Dist0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.Equal(t, before, g.Edges())
	ids, err := g.NeighborIDs(SampleD)
	require.NoError(t, err)
	assert.Empty(t, ids)
	deg, err := g.Degree(SampleB)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestGraph_NeighborsDeterministic(t *testing.T) {
	g := newChain()

	ids, err := g.NeighborIDs(SampleB)
	require.NoError(t, err)
	assert.Equal(t, []string{SampleA, SampleC}, ids)

	ids, err = g.NeighborIDs(SampleD)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, []string{SampleA, SampleB, SampleC, SampleD}, g.Vertices())
}

func TestGraph_EdgesSorted(t *testing.T) {
	g := newChain()

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, SampleB, edges[0].Other(SampleA))
	assert.Equal(t, SampleA, edges[0].Other(SampleB))
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := newChain()
	require.NoError(t, g.RemoveVertex(SampleB))

	assert.Zero(t, g.EdgeCount())
	ids, err := g.NeighborIDs(SampleA)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGraph_Stats(t *testing.T) {
	g := newChain()
	require.NoError(t, g.SetLabels(SampleA, "A001", "A001"))
	require.NoError(t, g.SetLabels(SampleC, "", "A002"))

	s := g.Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 1, s.CuratedCount)
	assert.Equal(t, 2, s.FinalCount)
	assert.Equal(t, 1, s.IsolatedCount)
}
