// Package dijkstra computes the fastest route between two places of a
// core.Graph road network using Dijkstra's algorithm.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns either Found{TotalWeight, Path} or
//     NotFound, where Path runs from start to end inclusive.
//   - The frontier is a binary min-heap keyed by tentative distance.
//   - Decrease-key is emulated by re-insertion: an improved distance pushes a
//     new heap entry, and entries whose distance is greater than the recorded
//     one are discarded when popped.
//   - The search stops as soon as end is popped (its distance is final), or
//     when the frontier is empty.
//
// Correctness relies on non-negative weights, which core.Graph enforces at
// AddEdge time; the engine itself never observes a negative weight.
//
// Options:
//
//   - WithEarlyExit(bool): stop when end is popped (default true).
//   - WithMaxDistance(float64): never expand places farther than the cap; a
//     destination beyond it is reported as NotFound.
//
// Errors (sentinel):
//
//   - ErrNilGraph:          g is nil.
//   - core.ErrUnknownNode:  start or end is not in g (wrapped with the ID).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds at most one entry per relaxation.
//
// Thread safety:
//
//   - ShortestPath keeps all state in a per-call runner and only reads g
//     through its locked accessors, so concurrent queries are safe.
//   - A query running while g is mutated sees a mix of old and new roads; run
//     it on g.Clone() when that matters.
package dijkstra
