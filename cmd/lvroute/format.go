package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvroute/internal/network"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// routeOutput is the JSON shape of `lvroute route`.
type routeOutput struct {
	From             string   `json:"from"`
	To               string   `json:"to"`
	Found            bool     `json:"found"`
	TotalWeight      *float64 `json:"total_weight,omitempty"`
	Path             []string `json:"path"`
	ElapsedMS        float64  `json:"elapsed_ms"`
	HighlightedEdges []string `json:"highlighted_edges"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// writeRouteText prints a report the way the map UI words it.
func writeRouteText(w io.Writer, from, to string, rep network.Report) error {
	var b strings.Builder
	if rep.Found {
		fmt.Fprintf(&b, "Shortest distance: %g minutes\n", rep.TotalWeight)
		fmt.Fprintf(&b, "Path: %s\n", strings.Join(rep.Path, " -> "))
	} else {
		fmt.Fprintf(&b, "No route found from %s to %s.\n", from, to)
	}
	fmt.Fprintf(&b, "Calculation time: %.4f seconds\n", rep.ElapsedSeconds())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRouteJSON(w io.Writer, from, to string, rep network.Report, n *network.Network) error {
	out := routeOutput{
		From:             from,
		To:               to,
		Found:            rep.Found,
		Path:             []string{},
		ElapsedMS:        rep.ElapsedMillis(),
		HighlightedEdges: network.HighlightedIDs(rep.Result, n.Edges()),
	}
	if rep.Found {
		total := rep.TotalWeight
		out.TotalWeight = &total
		out.Path = rep.Path
	}

	return writeJSON(w, out)
}

// writeTable prints left-aligned columns separated by two spaces.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var b strings.Builder
	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := widths[i] - len([]rune(cell))
			parts[i] = cell + strings.Repeat(" ", pad)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, wd := range widths {
		seps[i] = strings.Repeat("-", wd)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
