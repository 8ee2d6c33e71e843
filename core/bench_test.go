// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkAddEdge measures appending roads from a single hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddNode("Root", "")
	for i := 0; i < 100; i++ {
		_ = g.AddNode(fmt.Sprintf("N%d", i), "")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100), float64(i))
	}
}

// BenchmarkNeighbors measures copying the adjacency row of a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddNode("Center", "")
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("Node%d", i)
		_ = g.AddNode(id, "")
		_, _ = g.AddEdge("Center", id, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Center")
	}
}
