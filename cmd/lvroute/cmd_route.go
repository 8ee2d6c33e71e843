package main

import (
	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Compute the fastest route between two places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			from, to := args[0], args[1]
			rep, err := n.Query(from, to)
			if err != nil {
				return err
			}
			if a.flagFormat == formatJSON {
				return writeRouteJSON(cmd.OutOrStdout(), from, to, rep, n)
			}
			return writeRouteText(cmd.OutOrStdout(), from, to, rep)
		},
	}
}
