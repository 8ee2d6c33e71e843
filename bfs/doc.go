// Package bfs provides breadth-first traversal over a core.Graph, answering
// hop-count questions that ignore travel time.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node.
//   - Result carries the visit Order, the hop Depth of every reached node and
//     the Parent link of the BFS tree; PathTo rebuilds the fewest-hop route.
//   - Components partitions the whole network into connected components,
//     which is how callers learn in O(V + E) that two places can never reach
//     each other, whatever the weights.
//
// Determinism
//
//	core.Graph lists neighbors in road insertion order and BFS enqueues them
//	in that order, so Order and Components are reproducible for a given
//	build sequence. Components are returned in the order their first node
//	was inserted.
//
// Complexity (V = nodes, E = roads)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Maricá (Centro)", bfs.WithMaxDepth(2))
//	if err != nil { ... }
//	hops, _ := res.PathTo("Niterói (Centro)")
//
//	for _, comp := range bfs.Components(g) { ... }
//
// Options
//
//   - WithContext(ctx):       cancel a long traversal.
//   - WithMaxDepth(d):        stop exploring beyond d hops (d > 0; 0 = no limit).
//   - WithFilterNeighbor(fn): skip roads for which fn(curr, next) == false.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartVertexNotFound if the start node does not exist.
//   - ErrOptionViolation     for invalid options (negative MaxDepth).
//   - ErrNoPath              from PathTo when the destination was not reached.
//   - Wrapped hook errors from OnVisit.
package bfs
