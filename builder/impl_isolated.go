// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_isolated.go - implementation of Isolated(ids...) constructor.
//
// Contract:
//   - Adds each listed node (if missing) without any edges.
//   - Useful to graft an unreachable place onto another topology.

package builder

import "github.com/katalvlaran/lvroute/core"

const methodIsolated = "Isolated"

// Isolated returns a Constructor that adds the given nodes with no roads.
func Isolated(ids ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, id := range ids {
			if err := ensureNode(g, cfg, methodIsolated, id); err != nil {
				return err
			}
		}

		return nil
	}
}
