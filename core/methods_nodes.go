// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in the order they were added.
//
// Concurrency:
//   - AddNode under the write lock; queries under the read lock.

package core

import "fmt"

// AddNode inserts a node with the given ID and display label.
//
// Implementation:
//   - Stage 1: Reject an empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, reject an ID already present (ErrDuplicateNode).
//   - Stage 3: Register the node, record its position, and open an empty adjacency row.
//
// Behavior highlights:
//   - A rejected add leaves the graph unchanged.
//   - The label may be empty; it is never consulted by algorithms.
//
// Errors:
//   - ErrEmptyNodeID: id == "".
//   - ErrDuplicateNode: id already added (wrapped with the id).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id, label string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	g.nodes[id] = Node{ID: id, Label: label}
	g.order = append(g.order, id)
	g.adjacency[id] = make([]Neighbor, 0)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node registered under id, or ErrUnknownNode.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n, nil
}

// Nodes returns every node in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeIDs returns every node ID in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
