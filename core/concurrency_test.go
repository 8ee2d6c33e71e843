// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from a hub are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(NodeX, "hub"))
	for i := 0; i < NConcurrentAdds; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("V%d", i), ""))
	}

	var wg sync.WaitGroup
	errs := make(chan error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge(NodeX, fmt.Sprintf("V%d", id), float64(id)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(NodeX)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)

	seen := make(map[string]bool, NConcurrentAdds)
	for _, e := range g.Edges() {
		require.False(t, seen[e.ID], "duplicate edge ID %s", e.ID)
		seen[e.ID] = true
	}
}

// TestConcurrentNeighborsAndClone validates that concurrent reads and clones do not race.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := newDiamond(t)

	var wg sync.WaitGroup
	counts := make(chan int, NReaders)
	wg.Add(NReaders + NCloners)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(NodeA)
			if err == nil {
				counts <- len(nbs)
			}
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	close(counts)

	n := 0
	for c := range counts {
		require.Equal(t, 2, c)
		n++
	}
	require.Equal(t, NReaders, n)
}
