package bfs

import "github.com/katalvlaran/lvroute/core"

// Components partitions g into connected components. Each component lists
// its nodes in BFS order from its earliest-inserted node; components are
// ordered by that first node's insertion position. A nil graph yields nil.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	var (
		comps [][]string
		seen  = make(map[string]struct{}, g.NodeCount())
	)
	for _, id := range g.NodeIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			// core never removes nodes
			continue
		}
		for _, v := range res.Order {
			seen[v] = struct{}{}
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// ComponentIndex maps every node ID of g to the index of its component in
// Components(g). Two nodes are mutually reachable iff their indices match.
func ComponentIndex(g *core.Graph) map[string]int {
	if g == nil {
		return nil
	}
	comps := Components(g)
	idx := make(map[string]int, g.NodeCount())
	for i, comp := range comps {
		for _, id := range comp {
			idx[id] = i
		}
	}

	return idx
}
