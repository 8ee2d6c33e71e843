package config

import "github.com/katalvlaran/lvroute/internal/network"

// Places of the built-in network.
const (
	Marica        = "Maricá (Centro)"
	Itaipuacu     = "Itaipuaçu"
	BarraDeMarica = "Barra de Maricá"
	Niteroi       = "Niterói (Centro)"
	Icarai        = "Icaraí"
	Inga          = "Ingá"
	SaoFrancisco  = "São Francisco"
	Charitas      = "Charitas"
)

// DefaultFrom and DefaultTo are the places preselected for a route query.
const (
	DefaultFrom = Marica
	DefaultTo   = Niteroi
)

// DefaultNetwork returns the Maricá–Niterói road network; weights are
// driving minutes.
func DefaultNetwork() NetworkFile {
	ids := []string{Marica, Itaipuacu, BarraDeMarica, Niteroi, Icarai, Inga, SaoFrancisco, Charitas}
	nodes := make([]network.NodeSpec, len(ids))
	for i, id := range ids {
		nodes[i] = network.NodeSpec{ID: id, Label: id}
	}

	return NetworkFile{
		Nodes: nodes,
		Edges: []network.EdgeSpec{
			{From: Marica, To: Itaipuacu, Weight: 30},
			{From: Marica, To: BarraDeMarica, Weight: 20},
			{From: Itaipuacu, To: Niteroi, Weight: 60},
			{From: BarraDeMarica, To: SaoFrancisco, Weight: 40},
			{From: SaoFrancisco, To: Niteroi, Weight: 30},
			{From: Niteroi, To: Icarai, Weight: 15},
			{From: Niteroi, To: Inga, Weight: 20},
			{From: Icarai, To: Charitas, Weight: 10},
			{From: Inga, To: Charitas, Weight: 15},
			{From: Charitas, To: SaoFrancisco, Weight: 25},
		},
	}
}
