// Package export serializes layout graphs for non-interactive consumers:
// JSON for tooling, Graphviz DOT for diagram pipelines, and SVG rendered
// in-process via Graphviz.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/jsoncanvas/jsoncanvas/pkg/layout"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID     int       `json:"id"`
	Label  string    `json:"label"`
	Kind   string    `json:"kind"`
	Path   string    `json:"path"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Rows   []rowJSON `json:"rows,omitempty"`
	Text   string    `json:"text,omitempty"`
}

type rowJSON struct {
	Key       string `json:"key,omitempty"`
	Index     *int   `json:"index,omitempty"`
	Display   string `json:"display"`
	Kind      string `json:"kind"`
	Reference bool   `json:"reference,omitempty"`
}

type edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label,omitempty"`
}

// WriteJSON encodes a layout graph as indented JSON and writes it to w.
// Every node carries its position, size, path, and inline rows.
func WriteJSON(g *layout.Graph, w io.Writer) error {
	out := graph{
		Nodes: make([]node, len(g.Nodes)),
		Edges: make([]edge, len(g.Edges)),
	}

	for i, n := range g.Nodes {
		nd := node{
			ID:     n.ID,
			Label:  n.Label,
			Kind:   n.Kind.String(),
			Path:   n.Path.String(),
			X:      n.X,
			Y:      n.Y,
			Width:  n.Width,
			Height: n.Height,
		}
		switch c := n.Content.(type) {
		case layout.ObjectContent:
			nd.Rows = make([]rowJSON, len(c.Rows))
			for j, r := range c.Rows {
				nd.Rows[j] = rowJSON{Key: r.Key, Display: r.Display, Kind: r.Kind.String(), Reference: r.Reference}
			}
		case layout.ArrayContent:
			nd.Rows = make([]rowJSON, len(c.Rows))
			for j, r := range c.Rows {
				idx := r.Index
				nd.Rows[j] = rowJSON{Index: &idx, Display: r.Display, Kind: r.Kind.String(), Reference: r.Reference}
			}
		case layout.PrimitiveContent:
			nd.Text = c.Text
		}
		out.Nodes[i] = nd
	}
	for i, e := range g.Edges {
		out.Edges[i] = edge{From: e.From, To: e.To, Label: e.Label}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a layout graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *layout.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ToDOT converts a layout graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Structural nodes show their label plus inline rows; the single node of a
// primitive document shows its display text. Edges keep their key or index
// labels.
func ToDOT(g *layout.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", n.ID, nodeLabel(n))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %d -> %d [label=%q];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n layout.Node) string {
	switch c := n.Content.(type) {
	case layout.ObjectContent:
		parts := make([]string, 0, len(c.Rows)+1)
		parts = append(parts, n.Label)
		for _, r := range c.Rows {
			parts = append(parts, fmt.Sprintf("%s: %s", r.Key, r.Display))
		}
		return strings.Join(parts, "\n")
	case layout.ArrayContent:
		parts := make([]string, 0, len(c.Rows)+1)
		parts = append(parts, n.Label)
		for _, r := range c.Rows {
			parts = append(parts, fmt.Sprintf("[%d]: %s", r.Index, r.Display))
		}
		return strings.Join(parts, "\n")
	case layout.PrimitiveContent:
		return c.Text
	}
	return n.Label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
