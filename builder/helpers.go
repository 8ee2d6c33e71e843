// Package builder provides internal helpers shared by constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ensureNode adds id with its configured label unless it already exists, so
// constructors can share nodes.
func ensureNode(g *core.Graph, cfg builderConfig, method, id string) error {
	if g.HasNode(id) {
		return nil
	}
	if err := g.AddNode(id, cfg.labelFn(id)); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return nil
}

// addIndexedNodes adds nodes cfg.idFn(0..n-1) and returns their IDs in order.
func addIndexedNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := ensureNode(g, cfg, method, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// addWeightedEdge adds u-v with the next configured weight.
func addWeightedEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
