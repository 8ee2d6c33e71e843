// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and discarding entries whose distance is above the recorded one.
//   - We stop once the destination is popped, since no later entry can improve it.
//   - Path reconstruction is bounded by |V| steps, so a broken predecessor chain
//     yields NotFound instead of an endless walk.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// ShortestPath computes the minimum-total-weight route from start to end.
//
// Returns:
//
//   - Found{TotalWeight, Path} with Path[0] == start and Path[len-1] == end.
//   - NotFound() when no route exists (or every route exceeds MaxDistance).
//   - err for invalid inputs; the Result is then the zero value.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must exist in g (core.ErrUnknownNode).
//  3. end must exist in g (core.ErrUnknownNode).
//
// If start == end the result is Found{0, [start]} and no search is performed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", core.ErrUnknownNode, start)
	}
	if !g.HasNode(end) {
		return Result{}, fmt.Errorf("%w: end %q", core.ErrUnknownNode, end)
	}

	// 3) Trivial route
	if start == end {
		return found(0, []string{start}), nil
	}

	// 4) Search
	r := newRunner(g, cfg, start, end)
	if err := r.process(); err != nil {
		return Result{}, err
	}

	// 5) Report
	total := r.distance(end)
	if math.IsInf(total, 1) {
		return NotFound(), nil
	}
	path, ok := reconstructPath(r.prev, start, end, len(r.dist))
	if !ok {
		return NotFound(), nil
	}

	return found(total, path), nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g     *core.Graph        // The input graph; read-only here.
	opts  Options            // Resolved options.
	start string             // Source place.
	end   string             // Destination place.
	dist  map[string]float64 // Place → best known distance from start.
	prev  map[string]string  // Place → predecessor on the best known route.
	pq    nodePQ             // Frontier; may hold stale entries.
}

// newRunner initializes distances to +Inf (start = 0) and seeds the frontier.
func newRunner(g *core.Graph, opts Options, start, end string) *runner {
	ids := g.NodeIDs()
	r := &runner{
		g:     g,
		opts:  opts,
		start: start,
		end:   end,
		dist:  make(map[string]float64, len(ids)),
		prev:  make(map[string]string, len(ids)),
		pq:    make(nodePQ, 0, len(ids)),
	}
	inf := math.Inf(1)
	for _, id := range ids {
		r.dist[id] = inf
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// distance returns the recorded distance of id, +Inf if unseen.
func (r *runner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// process is the main loop: pop the closest frontier entry, drop it if stale,
// otherwise relax its roads.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The popped place is the destination and EarlyExit is on.
//   - The popped distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Superseded by a shorter route pushed later.
		if item.dist > r.distance(item.id) {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		if r.opts.EarlyExit && item.id == r.end {
			break
		}

		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u. Only a strictly
// shorter candidate updates the neighbor and pushes a new frontier entry.
func (r *runner) relax(u string, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		cand := du + nb.Weight
		if cand > r.opts.MaxDistance {
			continue
		}
		if cand >= r.distance(nb.ID) {
			continue
		}
		r.dist[nb.ID] = cand
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: cand})
	}

	return nil
}

// reconstructPath walks predecessors from end back to start and reverses the
// walk. It gives up after limit steps, or on a missing link, returning false.
func reconstructPath(prev map[string]string, start, end string, limit int) ([]string, bool) {
	path := []string{end}
	cur := end
	for steps := 0; cur != start; steps++ {
		if steps >= limit {
			return nil, false
		}
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// nodeItem is a frontier entry: a place and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
