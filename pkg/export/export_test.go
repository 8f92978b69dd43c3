package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
	"github.com/jsoncanvas/jsoncanvas/pkg/layout"
)

func buildGraph(t *testing.T, text string) *layout.Graph {
	t.Helper()
	v, err := jsontree.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return layout.NewBuilder(layout.DefaultMetrics()).Build(v)
}

func TestWriteJSON(t *testing.T) {
	g := buildGraph(t, `{"user":{"name":"Alice"},"items":[1,2]}`)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var out struct {
		Nodes []struct {
			ID   int    `json:"id"`
			Kind string `json:"kind"`
			Path string `json:"path"`
			Rows []struct {
				Display   string `json:"display"`
				Reference bool   `json:"reference"`
			} `json:"rows"`
		} `json:"nodes"`
		Edges []struct {
			From  int    `json:"from"`
			To    int    `json:"to"`
			Label string `json:"label"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(out.Nodes) != len(g.Nodes) || len(out.Edges) != len(g.Edges) {
		t.Fatalf("exported %d nodes, %d edges; graph has %d, %d",
			len(out.Nodes), len(out.Edges), len(g.Nodes), len(g.Edges))
	}
	if out.Nodes[0].Path != "$" {
		t.Errorf("root path = %q, want $", out.Nodes[0].Path)
	}
	// The user row on the root is a reference, not an inline value.
	if !out.Nodes[0].Rows[0].Reference {
		t.Errorf("root row 0 = %+v, want reference", out.Nodes[0].Rows[0])
	}
}

func TestToDOTContainsAllNodesAndEdges(t *testing.T) {
	g := buildGraph(t, `{"user":{"name":"Alice"},"items":[1,{"id":2}]}`)
	dot := ToDOT(g)

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Fatalf("missing digraph header:\n%s", dot)
	}
	for _, n := range g.Nodes {
		if !strings.Contains(dot, fmt.Sprintf("  %d [label=", n.ID)) {
			t.Errorf("node %d missing from DOT", n.ID)
		}
	}
	for _, e := range g.Edges {
		if !strings.Contains(dot, fmt.Sprintf("%d -> %d", e.From, e.To)) {
			t.Errorf("edge %d -> %d missing from DOT", e.From, e.To)
		}
	}
	// Edge labels survive.
	if !strings.Contains(dot, `[label="user"]`) {
		t.Errorf("edge label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `[label="[1]"]`) {
		t.Errorf("array edge label missing:\n%s", dot)
	}
}

func TestToDOTPrimitiveRoot(t *testing.T) {
	dot := ToDOT(buildGraph(t, `42`))
	if !strings.Contains(dot, `label="42"`) {
		t.Errorf("primitive label missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="8pt" height="6pt" viewBox="0.00 0.00 134.00 188.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 134.00 188.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="134" height="188"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}

	// SVG without a viewBox passes through untouched.
	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("plain SVG modified: %s", got)
	}
}
