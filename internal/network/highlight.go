package network

import (
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Highlight flags, per edge, whether the route travels it. An edge is flagged
// when some consecutive pair of res.Path matches its endpoints in either
// direction; parallel roads between the same pair are all flagged. A result
// that is not Found flags nothing. The returned slice is aligned with edges.
func Highlight(res dijkstra.Result, edges []core.Edge) []bool {
	flags := make([]bool, len(edges))
	segs := res.Segments()
	if len(segs) == 0 {
		return flags
	}

	onRoute := make(map[[2]string]struct{}, 2*len(segs))
	for _, s := range segs {
		onRoute[s] = struct{}{}
		onRoute[[2]string{s[1], s[0]}] = struct{}{}
	}
	for i, e := range edges {
		_, flags[i] = onRoute[[2]string{e.From, e.To}]
	}

	return flags
}

// HighlightedIDs returns the IDs of the flagged edges in edge order.
func HighlightedIDs(res dijkstra.Result, edges []core.Edge) []string {
	flags := Highlight(res, edges)
	ids := make([]string, 0, res.Hops())
	for i, on := range flags {
		if on {
			ids = append(ids, edges[i].ID)
		}
	}

	return ids
}
