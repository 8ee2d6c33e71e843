// Package dfs enumerates simple routes between two places of a core.Graph
// by depth-first search.
//
// Where dijkstra answers "which route is fastest", dfs answers "which routes
// exist at all": every loop-free route from one place to another, each with
// the roads it uses and its total travel time. On small networks this is the
// exhaustive oracle against which shortest-path answers can be checked.
//
// Key features:
//   - SimplePaths(g, from, to, opts...): all loop-free routes, in discovery order.
//   - Parallel roads are distinct routes: a route is a sequence of road IDs.
//   - Limits: MaxDepth (roads per route) and Limit (routes returned).
//   - Cancellation via context.Context, checked on every step.
//   - Cheapest(paths): the minimum-weight route of a set.
//
// Complexity:
//
//   - Time:   exponential in the worst case (K_n has (n-2)! routes between two places);
//     intended for networks of a few dozen places or bounded by MaxDepth/Limit.
//   - Memory: O(V) for the recursion stack, plus the returned routes.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if from is missing.
//   - ErrEndVertexNotFound   if to is missing.
//   - ErrOptionViolation     for negative MaxDepth or Limit.
//   - context errors if ctx is done.
package dfs
