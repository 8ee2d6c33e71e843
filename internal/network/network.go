// Package network wires the graph store and the shortest-path engine into the
// two operations the outside world sees: building the road network once at
// startup, and answering timed route queries against it.
package network

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/logging"
)

// NodeSpec describes one place of the network definition.
type NodeSpec struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label,omitempty" json:"label"`
}

// EdgeSpec describes one two-way road; Weight is the travel time in minutes.
type EdgeSpec struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Observer receives query and graph-size events. internal/metrics.Recorder
// implements it.
type Observer interface {
	ObserveQuery(outcome string, elapsed time.Duration)
	SetGraphSize(nodes, edges int)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, time.Duration) {}
func (nopObserver) SetGraphSize(int, int)              {}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}
	return func(n *Network) {
		n.log = l
	}
}

// WithObserver sets the event observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("network: WithObserver(nil)")
	}
	return func(n *Network) {
		n.obs = o
	}
}

// Network is an immutable road network ready to answer route queries.
// It is safe for concurrent use.
type Network struct {
	g     *core.Graph
	log   *logrus.Logger
	obs   Observer
	comps [][]string
}

// Build constructs the graph from node and edge lists, in order. The first
// failing insertion aborts the build; its error is returned wrapped with the
// offending position.
func Build(nodes []NodeSpec, edges []EdgeSpec, opts ...Option) (*Network, error) {
	n := &Network{
		g:   core.NewGraph(),
		log: logging.Discard(),
		obs: nopObserver{},
	}
	for _, opt := range opts {
		opt(n)
	}

	for i, ns := range nodes {
		label := ns.Label
		if label == "" {
			label = ns.ID
		}
		if err := n.g.AddNode(ns.ID, label); err != nil {
			return nil, fmt.Errorf("network: node %d %q: %w", i, ns.ID, err)
		}
	}
	for i, es := range edges {
		if _, err := n.g.AddEdge(es.From, es.To, es.Weight); err != nil {
			return nil, fmt.Errorf("network: edge %d %s→%s: %w", i, es.From, es.To, err)
		}
	}

	n.comps = bfs.Components(n.g)
	n.obs.SetGraphSize(n.g.NodeCount(), n.g.EdgeCount())

	fields := logrus.Fields{
		"nodes":      n.g.NodeCount(),
		"edges":      n.g.EdgeCount(),
		"components": len(n.comps),
	}
	if len(n.comps) > 1 {
		for i, comp := range n.comps[1:] {
			n.log.WithFields(logrus.Fields{"component": i + 1, "places": comp}).
				Warn("places unreachable from the main network")
		}
	}
	n.log.WithFields(fields).Info("road network built")

	return n, nil
}

// Graph returns the underlying graph. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.g }

// HasPlace reports whether id is a place of the network.
func (n *Network) HasPlace(id string) bool { return n.g.HasNode(id) }

// Nodes returns the places in definition order.
func (n *Network) Nodes() []core.Node { return n.g.Nodes() }

// Edges returns the roads in definition order.
func (n *Network) Edges() []core.Edge { return n.g.Edges() }

// Components returns the connected components computed at build time.
func (n *Network) Components() [][]string {
	out := make([][]string, len(n.comps))
	for i, c := range n.comps {
		out[i] = append([]string(nil), c...)
	}

	return out
}
