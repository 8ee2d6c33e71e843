// SPDX-License-Identifier: MIT

// Package core provides the in-memory road network store used by lvroute:
// a fixed set of places (nodes) joined by undirected, weighted roads (edges).
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: AddEdge(a,b,w) makes a→b and b→a traversable at cost w.
//   - Weights are travel times; they must be finite and ≥ 0 (ErrInvalidWeight).
//   - Parallel roads between the same places are kept, never deduplicated.
//   - Nothing is ever removed: the network is built once and then queried.
//
// Adjacency is maintained incrementally: every AddEdge appends one Neighbor
// record to each endpoint's row (one record for a self-loop), so Neighbors is
// a plain copy of that row and never has to be rebuilt.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id, label string) error            // O(1)
//	HasNode(id string) bool                    // O(1)
//	Node(id string) (Node, error)              // O(1)
//	Nodes() []Node                             // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (string, error) // O(1) amortized
//	HasEdge(a, b string) bool                  // O(deg(a))
//	Edges() []Edge                             // O(E), insertion order
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)   // O(deg(id))
//	NodeCount() int, EdgeCount() int           // O(1)
//
//	// Snapshots
//	Clone() *Graph                             // O(V+E)
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrDuplicateNode  – AddNode with an ID already present
//	ErrUnknownNode    – reference to a node never added
//	ErrInvalidWeight  – negative, NaN or infinite edge weight
//
// Concurrency:
//
// A single sync.RWMutex guards all catalogs. Mutations take the write lock and
// queries take the read lock, so concurrent queries are safe; a query that must
// not observe later mutations should run against Clone().
package core
