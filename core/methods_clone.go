// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshotting graph instances.
//
// Determinism:
//   - Clone carries the edge ID counter so AddEdge on the clone continues the same sequence.
//
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: nodes, edges, adjacency and the edge
// ID counter. Mutating either graph afterwards never affects the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		edgeSeq:   g.edgeSeq,
		nodes:     make(map[string]Node, len(g.nodes)),
		order:     make([]string, len(g.order)),
		edges:     make([]Edge, len(g.edges)),
		adjacency: make(map[string][]Neighbor, len(g.adjacency)),
	}
	copy(clone.order, g.order)
	copy(clone.edges, g.edges)
	for id, n := range g.nodes {
		clone.nodes[id] = n
	}
	for id, row := range g.adjacency {
		cp := make([]Neighbor, len(row))
		copy(cp, row)
		clone.adjacency[id] = cp
	}

	return clone
}
