// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvroute/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// newDiamond builds the four-place network used throughout the tests:
//
//	A-B (30), A-C (20), C-D (40), D-B (10)
func newDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{NodeA, NodeB, NodeC, NodeD} {
		require.NoError(t, g.AddNode(id, "node "+id))
	}
	mustEdge(t, g, NodeA, NodeB, 30)
	mustEdge(t, g, NodeA, NodeC, 20)
	mustEdge(t, g, NodeC, NodeD, 40)
	mustEdge(t, g, NodeD, NodeB, 10)

	return g
}

// mustEdge adds an edge and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, w)
	require.NoError(t, err)

	return eid
}

// neighborIDs projects a Neighbors result onto neighbor IDs.
func neighborIDs(nbs []core.Neighbor) []string {
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, nb.ID)
	}

	return out
}
