// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge adds an undirected road between from and to with the given travel time
// and returns its edge ID.
//
// Steps:
//  1. Reject empty endpoint IDs (ErrEmptyNodeID).
//  2. Under the write lock, require both endpoints to exist (ErrUnknownNode).
//  3. Require a finite, non-negative weight (ErrInvalidWeight).
//  4. Assign the next edge ID, store the edge, and append a Neighbor record to
//     both adjacency rows (once for a self-loop).
//
// Any rejected call leaves nodes, edges and adjacency untouched.
// Parallel edges are accepted; every copy is visible through Neighbors.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}
	if !validWeight(weight) {
		return "", fmt.Errorf("%w: %s→%s weight=%g", ErrInvalidWeight, from, to, weight)
	}

	eid := g.nextEdgeID()
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})

	g.adjacency[from] = append(g.adjacency[from], Neighbor{ID: to, Weight: weight, EdgeID: eid})
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], Neighbor{ID: from, Weight: weight, EdgeID: eid})
	}

	return eid, nil
}

// HasEdge reports whether at least one road joins a and b (in either order).
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, nb := range g.adjacency[a] {
		if nb.ID == b {
			return true
		}
	}

	return false
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// validWeight reports whether w is usable as a travel time.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// nextEdgeID returns a new textual edge ID. Caller holds the write lock.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
