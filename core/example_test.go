package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ExampleGraph_Neighbors builds a tiny road network and lists the roads leaving one place.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_ = g.AddNode("icarai", "Icaraí")
	_ = g.AddNode("inga", "Ingá")
	_ = g.AddNode("charitas", "Charitas")
	_, _ = g.AddEdge("icarai", "charitas", 10)
	_, _ = g.AddEdge("inga", "charitas", 15)

	nbs, _ := g.Neighbors("charitas")
	for _, nb := range nbs {
		fmt.Printf("%s %g min via %s\n", nb.ID, nb.Weight, nb.EdgeID)
	}
	// Output:
	// icarai 10 min via e1
	// inga 15 min via e2
}

// ExampleGraph_AddEdge shows construction-time validation.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddNode("A", "")
	_ = g.AddNode("B", "")

	_, err := g.AddEdge("A", "B", -1)
	fmt.Println(errors.Is(err, core.ErrInvalidWeight))
	_, err = g.AddEdge("A", "Z", 1)
	fmt.Println(errors.Is(err, core.ErrUnknownNode))
	// Output:
	// true
	// true
}
