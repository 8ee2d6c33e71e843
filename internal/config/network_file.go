package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/network"
)

// ErrEmptyNetwork is returned for a definition file without places.
var ErrEmptyNetwork = errors.New("config: network defines no places")

// NetworkFile is the on-disk road network definition.
//
//	nodes:
//	  - id: A
//	    label: Maricá (Centro)
//	edges:
//	  - {from: A, to: B, weight: 30}
type NetworkFile struct {
	Nodes []network.NodeSpec `yaml:"nodes"`
	Edges []network.EdgeSpec `yaml:"edges"`
}

// LoadNetwork reads the YAML network at path using strict parsing. An empty
// path yields DefaultNetwork.
func LoadNetwork(path string) (NetworkFile, error) {
	if path == "" {
		return DefaultNetwork(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return NetworkFile{}, fmt.Errorf("failed to open network file: %w", err)
	}
	defer file.Close()

	return DecodeNetwork(file)
}

// DecodeNetwork strictly decodes a YAML network definition from r.
func DecodeNetwork(r io.Reader) (NetworkFile, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var nf NetworkFile
	if err := decoder.Decode(&nf); err != nil {
		if errors.Is(err, io.EOF) {
			return NetworkFile{}, ErrEmptyNetwork
		}
		return NetworkFile{}, fmt.Errorf("YAML syntax error in network file: %w", err)
	}
	if len(nf.Nodes) == 0 {
		return NetworkFile{}, ErrEmptyNetwork
	}

	return nf, nil
}

// WriteNetwork encodes nf as YAML to w.
func WriteNetwork(w io.Writer, nf NetworkFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nf); err != nil {
		return fmt.Errorf("encode network: %w", err)
	}

	return enc.Close()
}

// FromGraph exports g as a definition file, preserving insertion order.
func FromGraph(g *core.Graph) NetworkFile {
	nodes := g.Nodes()
	edges := g.Edges()
	nf := NetworkFile{
		Nodes: make([]network.NodeSpec, len(nodes)),
		Edges: make([]network.EdgeSpec, len(edges)),
	}
	for i, n := range nodes {
		nf.Nodes[i] = network.NodeSpec{ID: n.ID, Label: n.Label}
		if n.Label == n.ID {
			nf.Nodes[i].Label = ""
		}
	}
	for i, e := range edges {
		nf.Edges[i] = network.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}

	return nf
}

// Build constructs the network described by nf.
func (nf NetworkFile) Build(opts ...network.Option) (*network.Network, error) {
	return network.Build(nf.Nodes, nf.Edges, opts...)
}
