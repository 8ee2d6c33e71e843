package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/network"
)

const sampleYAML = `nodes:
  - id: A
    label: Maricá (Centro)
  - id: B
edges:
  - {from: A, to: B, weight: 30}
`

func TestDecodeNetwork(t *testing.T) {
	nf, err := config.DecodeNetwork(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, []network.NodeSpec{{ID: "A", Label: "Maricá (Centro)"}, {ID: "B"}}, nf.Nodes)
	assert.Equal(t, []network.EdgeSpec{{From: "A", To: "B", Weight: 30}}, nf.Edges)
}

func TestDecodeNetwork_Strict(t *testing.T) {
	_, err := config.DecodeNetwork(strings.NewReader("nodes:\n  - id: A\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML syntax error")

	_, err = config.DecodeNetwork(strings.NewReader(""))
	assert.ErrorIs(t, err, config.ErrEmptyNetwork)

	_, err = config.DecodeNetwork(strings.NewReader("edges: []\n"))
	assert.ErrorIs(t, err, config.ErrEmptyNetwork)
}

func TestLoadNetwork_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	nf, err := config.LoadNetwork(path)
	require.NoError(t, err)
	assert.Len(t, nf.Nodes, 2)

	_, err = config.LoadNetwork(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadNetwork_EmptyPathIsDefault(t *testing.T) {
	nf, err := config.LoadNetwork("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultNetwork(), nf)
}

func TestDefaultNetwork_Routes(t *testing.T) {
	n, err := config.DefaultNetwork().Build()
	require.NoError(t, err)
	assert.Len(t, n.Nodes(), 8)
	assert.Len(t, n.Edges(), 10)
	assert.Len(t, n.Components(), 1)

	rep, err := n.Query(config.DefaultFrom, config.DefaultTo)
	require.NoError(t, err)
	assert.Equal(t, 90.0, rep.TotalWeight)
	assert.Equal(t, []string{config.Marica, config.Itaipuacu, config.Niteroi}, rep.Path)

	rep, err = n.Query(config.Marica, config.Icarai)
	require.NoError(t, err)
	assert.Equal(t, 95.0, rep.TotalWeight)
	assert.Equal(t, []string{config.Marica, config.BarraDeMarica, config.SaoFrancisco, config.Charitas, config.Icarai}, rep.Path)
}

func TestWriteNetwork_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.WriteNetwork(&buf, config.DefaultNetwork()))

	back, err := config.DecodeNetwork(&buf)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultNetwork(), back)
}

func TestFromGraph(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithConstantWeight(4),
		builder.WithLabelFn(func(id string) string {
			if id == "A" {
				return "Depot"
			}
			return id
		}),
	}, builder.Path(3))
	require.NoError(t, err)

	nf := config.FromGraph(g)
	assert.Equal(t, []network.NodeSpec{{ID: "A", Label: "Depot"}, {ID: "B"}, {ID: "C"}}, nf.Nodes)
	assert.Equal(t, []network.EdgeSpec{{From: "A", To: "B", Weight: 4}, {From: "B", To: "C", Weight: 4}}, nf.Edges)

	var buf bytes.Buffer
	require.NoError(t, config.WriteNetwork(&buf, nf))
	assert.NotContains(t, buf.String(), "label: B", "labels equal to ids are omitted")
}
