// Package lvroute computes fastest routes across small road networks.
//
// 🚗 What is lvroute?
//
//	An in-memory, thread-safe toolkit built around one question:
//	"what is the quickest way from here to there?"
//		• core/      - undirected road graph: places, weighted roads, adjacency
//		• dijkstra/  - shortest-path engine over core.Graph (binary heap, lazy decrease-key)
//		• bfs/       - hop-order traversal and connected components
//		• builder/   - deterministic network fixtures (path, cycle, grid, complete, random)
//
//	The application layer lives under internal/ and cmd/lvroute:
//		• internal/network - build a network once, answer timed route queries
//		• internal/config  - env configuration and YAML network files
//		• internal/api     - HTTP API for the map UI (gin)
//		• cmd/lvroute      - CLI: route, nodes, serve, generate
//
// Quick ASCII example (travel minutes):
//
//	    A──30──B
//	    │      │
//	   20     10
//	    │      │
//	    C──40──D
//
//	Fastest A→B is the direct road (30); A→D goes through B (40).
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
//	lvroute route "Maricá (Centro)" "Niterói (Centro)"
package lvroute
