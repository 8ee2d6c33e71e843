// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries consumed by the shortest-path engine and traversals.

package core

import "fmt"

// Neighbors returns the (neighbor, weight) pairs reachable from id in one step.
//
// Implementation:
//   - Stage 1: Under the read lock, look up the adjacency row for id.
//   - Stage 2: Return a copy so callers cannot alias internal storage.
//
// Behavior highlights:
//   - Order is edge insertion order; parallel roads appear once each.
//   - A node without roads yields an empty, non-nil slice.
//   - A self-loop contributes a single entry pointing back at id.
//
// Errors:
//   - ErrUnknownNode: id was never added (wrapped with the id).
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Neighbor, len(row))
	copy(out, row)

	return out, nil
}

// Degree returns the number of adjacency entries of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return len(row), nil
}
