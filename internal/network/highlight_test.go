package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/internal/network"
)

func TestHighlight(t *testing.T) {
	edges := []core.Edge{
		{ID: "e1", From: "A", To: "B", Weight: 30},
		{ID: "e2", From: "A", To: "C", Weight: 20},
		{ID: "e3", From: "C", To: "D", Weight: 40},
		{ID: "e4", From: "D", To: "B", Weight: 10},
		{ID: "e5", From: "B", To: "A", Weight: 99},
	}

	res := dijkstra.Result{Found: true, TotalWeight: 40, Path: []string{"A", "B", "D"}}
	assert.Equal(t, []bool{true, false, false, true, true}, network.Highlight(res, edges),
		"reverse orientation and parallel roads count")
	assert.Equal(t, []string{"e1", "e4", "e5"}, network.HighlightedIDs(res, edges))

	assert.Equal(t, make([]bool, 5), network.Highlight(dijkstra.NotFound(), edges))
	self := dijkstra.Result{Found: true, Path: []string{"A"}}
	assert.Equal(t, make([]bool, 5), network.Highlight(self, edges))
	assert.Empty(t, network.HighlightedIDs(self, edges))
	assert.Empty(t, network.Highlight(res, nil))
}
