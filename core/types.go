// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Neighbor and Graph declarations, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an operation referenced a node that was never added.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// Node is a place in the road network.
//
// ID is the identity used by every algorithm; Label is cosmetic.
type Node struct {
	ID    string
	Label string
}

// Edge is an undirected road between From and To.
type Edge struct {
	// ID is assigned by AddEdge ("e1", "e2", ...).
	ID string

	// From and To are the endpoints in the order they were given to AddEdge.
	// The road is traversable in both directions.
	From string
	To   string

	// Weight is the travel time across the road.
	Weight float64
}

// Neighbor is one adjacency entry: the road EdgeID leads to ID at cost Weight.
type Neighbor struct {
	ID     string
	Weight float64
	EdgeID string
}

// Graph is the road network store.
//
// mu guards every field below it. order and edges keep insertion order so that
// enumerations are deterministic without sorting.
type Graph struct {
	mu sync.RWMutex

	edgeSeq uint64
	nodes   map[string]Node
	order   []string
	edges   []Edge

	// adjacency[id] lists every road leaving id, in insertion order.
	adjacency map[string][]Neighbor
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]Neighbor),
	}
}
