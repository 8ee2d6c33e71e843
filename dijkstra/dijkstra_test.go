package dijkstra_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// diamond builds A-B(30), A-C(20), C-D(40), D-B(10) plus isolated E.
func diamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddNode(id, id))
	}
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 30}, {"A", "C", 20}, {"C", "D", 40}, {"D", "B", 10}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

// pathWeight sums the cheapest road between each consecutive pair and fails
// if a pair is not adjacent.
func pathWeight(t *testing.T, g *core.Graph, path []string) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		nbrs, err := g.Neighbors(path[i-1])
		require.NoError(t, err)
		best := math.Inf(1)
		for _, nb := range nbrs {
			if nb.ID == path[i] && nb.Weight < best {
				best = nb.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), "%s and %s are not adjacent", path[i-1], path[i])
		total += best
	}
	return total
}

// bruteForce returns the cheapest simple route weight found by exhaustive
// enumeration, +Inf if none exists.
func bruteForce(t *testing.T, g *core.Graph, start, end string) float64 {
	t.Helper()
	paths, err := dfs.SimplePaths(g, start, end)
	require.NoError(t, err)
	best, ok := dfs.Cheapest(paths)
	if !ok {
		return math.Inf(1)
	}
	return best.Weight
}

func TestShortestPath_Validation(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := diamond(t)
	res, err := dijkstra.ShortestPath(g, "Z", "A")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Contains(t, err.Error(), `start "Z"`)
	assert.Equal(t, dijkstra.Result{}, res)

	_, err = dijkstra.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Contains(t, err.Error(), `end "Z"`)

	// start is checked before end
	_, err = dijkstra.ShortestPath(g, "X", "Y")
	assert.Contains(t, err.Error(), `start "X"`)
}

func TestShortestPath_Diamond(t *testing.T) {
	g := diamond(t)

	cases := []struct {
		from, to string
		want     dijkstra.Result
	}{
		{"A", "B", dijkstra.Result{Found: true, TotalWeight: 30, Path: []string{"A", "B"}}},
		{"B", "A", dijkstra.Result{Found: true, TotalWeight: 30, Path: []string{"B", "A"}}},
		{"A", "D", dijkstra.Result{Found: true, TotalWeight: 40, Path: []string{"A", "B", "D"}}},
		{"C", "B", dijkstra.Result{Found: true, TotalWeight: 50, Path: []string{"C", "A", "B"}}},
		{"A", "E", dijkstra.NotFound()},
		{"E", "D", dijkstra.NotFound()},
	}
	for _, tc := range cases {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			got, err := dijkstra.ShortestPath(g, tc.from, tc.to)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ShortestPath(%s,%s) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
			}
		})
	}
}

func TestShortestPath_SelfQuery(t *testing.T) {
	g := diamond(t)
	for _, id := range g.NodeIDs() {
		got, err := dijkstra.ShortestPath(g, id, id)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.Result{Found: true, TotalWeight: 0, Path: []string{id}}, got)
	}
}

func TestShortestPath_NotFoundShape(t *testing.T) {
	got, err := dijkstra.ShortestPath(diamond(t), "A", "E")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.True(t, math.IsInf(got.TotalWeight, 1))
	assert.Nil(t, got.Path)
	assert.Equal(t, "not found", got.String())
	assert.Zero(t, got.Hops())
	assert.Nil(t, got.Segments())
}

func TestShortestPath_ParallelEdgesPreferCheapest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", "A"))
	require.NoError(t, g.AddNode("B", "B"))
	for _, w := range []float64{9, 4, 7} {
		_, err := g.AddEdge("A", "B", w)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	got, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.TotalWeight)
	assert.Equal(t, []string{"A", "B"}, got.Path)
}

func TestShortestPath_ZeroWeightRoads(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(0)}, builder.Path(4))
	require.NoError(t, err)

	got, err := dijkstra.ShortestPath(g, "0", "3")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Zero(t, got.TotalWeight)
	assert.Equal(t, []string{"0", "1", "2", "3"}, got.Path)
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := diamond(t)

	got, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(39))
	require.NoError(t, err)
	assert.False(t, got.Found)

	got, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(40))
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.TotalWeight)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
}

func TestResult_Helpers(t *testing.T) {
	got, err := dijkstra.ShortestPath(diamond(t), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Hops())
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "D"}}, got.Segments())
	assert.Equal(t, "40 [A -> B -> D]", got.String())
}

// TestShortestPath_RandomProperties cross-checks ShortestPath against
// exhaustive enumeration and BFS connectivity on seeded random networks.
func TestShortestPath_RandomProperties(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithIntRangeWeight(0, 20),
			}, builder.RandomSparse(8, 0.35))
			require.NoError(t, err)

			comp := bfs.ComponentIndex(g)
			ids := g.NodeIDs()
			for _, s := range ids {
				for _, e := range ids {
					got, err := dijkstra.ShortestPath(g, s, e)
					require.NoError(t, err)

					if comp[s] != comp[e] {
						assert.False(t, got.Found, "%s->%s crosses components", s, e)
						continue
					}
					require.True(t, got.Found, "%s->%s share a component", s, e)
					require.NotEmpty(t, got.Path)
					assert.Equal(t, s, got.Path[0])
					assert.Equal(t, e, got.Path[len(got.Path)-1])
					assert.Equal(t, got.TotalWeight, pathWeight(t, g, got.Path))
					assert.Equal(t, bruteForce(t, g, s, e), got.TotalWeight, "%s->%s not optimal", s, e)

					// settling the whole graph must not change the answer
					full, err := dijkstra.ShortestPath(g, s, e, dijkstra.WithEarlyExit(false))
					require.NoError(t, err)
					assert.Equal(t, got.TotalWeight, full.TotalWeight)

					// symmetric network ⇒ symmetric cost
					back, err := dijkstra.ShortestPath(g, e, s)
					require.NoError(t, err)
					assert.Equal(t, got.TotalWeight, back.TotalWeight)
				}
			}
		})
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(99),
		builder.WithConstantWeight(1),
	}, builder.Grid(6, 6))
	require.NoError(t, err)

	first, err := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 10.0, first.TotalWeight)
	for i := 0; i < 20; i++ {
		again, err := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(5, 5))
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestShortestPath_DoesNotMutateGraph(t *testing.T) {
	g := diamond(t)
	before := g.Edges()
	_, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

func TestReconstructPath(t *testing.T) {
	prev := map[string]string{"B": "A", "D": "B"}
	path, ok := dijkstra.ReconstructPath(prev, "A", "D", 4)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, path)

	// missing link
	_, ok = dijkstra.ReconstructPath(map[string]string{"D": "B"}, "A", "D", 4)
	assert.False(t, ok)

	// predecessor cycle never reaching start
	_, ok = dijkstra.ReconstructPath(map[string]string{"D": "B", "B": "D"}, "A", "D", 4)
	assert.False(t, ok)

	path, ok = dijkstra.ReconstructPath(nil, "A", "A", 1)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, path)
}

func TestShortestPath_ErrorIsNotFound(t *testing.T) {
	// NotFound is a Result, never an error.
	_, err := dijkstra.ShortestPath(diamond(t), "A", "E")
	assert.False(t, errors.Is(err, core.ErrUnknownNode))
	assert.NoError(t, err)
}
