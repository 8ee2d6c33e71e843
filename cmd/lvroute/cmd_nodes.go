package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/network"
)

func newNodesCmd(a *app) *cobra.Command {
	var withEdges bool
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the places (and optionally roads) of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			if a.flagFormat == formatJSON {
				return writeJSON(cmd.OutOrStdout(), catalog(n, withEdges))
			}

			rows := make([][]string, 0, len(n.Nodes()))
			for _, node := range n.Nodes() {
				rows = append(rows, []string{node.ID, node.Label})
			}
			if err := writeTable(cmd.OutOrStdout(), []string{"ID", "LABEL"}, rows); err != nil {
				return err
			}
			if !withEdges {
				return nil
			}
			rows = rows[:0]
			for _, e := range n.Edges() {
				rows = append(rows, []string{e.ID, e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64)})
			}
			if _, err := cmd.OutOrStdout().Write([]byte("\n")); err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "FROM", "TO", "MINUTES"}, rows)
		},
	}
	cmd.Flags().BoolVar(&withEdges, "edges", false, "Also list roads")

	return cmd
}

type catalogOutput struct {
	Nodes []network.NodeSpec `json:"nodes"`
	Edges []network.EdgeSpec `json:"edges,omitempty"`
}

func catalog(n *network.Network, withEdges bool) catalogOutput {
	var out catalogOutput
	for _, node := range n.Nodes() {
		out.Nodes = append(out.Nodes, network.NodeSpec{ID: node.ID, Label: node.Label})
	}
	if withEdges {
		for _, e := range n.Edges() {
			out.Edges = append(out.Edges, network.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
		}
	}

	return out
}
