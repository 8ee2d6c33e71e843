package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph  *core.Graph
	opts   Options
	end    string
	onPath map[string]bool
	nodes  []string
	edges  []string
	out    []Path
}

// SimplePaths returns every loop-free route from `from` to `to` in depth-first
// discovery order (neighbors in road insertion order). When from == to the
// single zero-weight route [from] is returned.
func SimplePaths(g *core.Graph, from, to string, opts ...Option) ([]Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, to)
	}

	w := &pathWalker{
		graph:  g,
		opts:   o,
		end:    to,
		onPath: map[string]bool{from: true},
		nodes:  []string{from},
	}
	if err := w.visit(from, 0); err != nil {
		return nil, err
	}

	return w.out, nil
}

// done reports whether Limit has been reached.
func (w *pathWalker) done() bool {
	return w.opts.Limit > 0 && len(w.out) >= w.opts.Limit
}

// visit extends the current route from u, which was reached at weight acc.
func (w *pathWalker) visit(u string, acc float64) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if u == w.end {
		w.out = append(w.out, Path{
			Nodes:   append([]string(nil), w.nodes...),
			EdgeIDs: append([]string(nil), w.edges...),
			Weight:  acc,
		})
		return nil
	}
	if w.opts.MaxDepth > 0 && len(w.edges) >= w.opts.MaxDepth {
		return nil
	}

	nbrs, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", u, err)
	}
	for _, nb := range nbrs {
		if w.done() {
			return nil
		}
		if w.onPath[nb.ID] {
			continue
		}

		w.onPath[nb.ID] = true
		w.nodes = append(w.nodes, nb.ID)
		w.edges = append(w.edges, nb.EdgeID)

		err = w.visit(nb.ID, acc+nb.Weight)

		w.edges = w.edges[:len(w.edges)-1]
		w.nodes = w.nodes[:len(w.nodes)-1]
		w.onPath[nb.ID] = false

		if err != nil {
			return err
		}
	}

	return nil
}

// Cheapest returns the minimum-weight route; ties keep the earliest. ok is
// false for an empty set.
func Cheapest(paths []Path) (best Path, ok bool) {
	for i, p := range paths {
		if i == 0 || p.Weight < best.Weight {
			best = p
		}
	}

	return best, len(paths) > 0
}
