package layout

import (
	"fmt"
	"strconv"

	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

// Metrics holds the layout constants. World coordinates are abstract units;
// the renderer decides what they mean on screen.
type Metrics struct {
	// BaseX, BaseY offset the whole graph from the origin.
	BaseX, BaseY float64
	// RowSpacing is the vertical distance between depth bands.
	RowSpacing float64
	// NodeWidth is the fixed drawn width of structural nodes.
	NodeWidth float64
	// HeaderHeight, RowHeight, Padding size a node's table body.
	HeaderHeight, RowHeight, Padding float64
	// MinNodeHeight floors the computed node height.
	MinNodeHeight float64
	// MaxVisibleRows caps how many rows contribute to node height; rows
	// beyond the cap are summarized as "N more" by the renderer.
	MaxVisibleRows int
	// LeafSubtreeWidth is the horizontal span a childless subtree consumes.
	LeafSubtreeWidth float64
	// PrimitiveWidth, PrimitiveHeight size the single node built for a
	// primitive document root.
	PrimitiveWidth, PrimitiveHeight float64
	// MaxRowRunes truncates string displays inside rows.
	MaxRowRunes int
	// MaxLabelRunes truncates the string display used as a primitive label.
	MaxLabelRunes int
}

// DefaultMetrics returns the standard layout constants.
func DefaultMetrics() Metrics {
	return Metrics{
		BaseX:            100,
		BaseY:            50,
		RowSpacing:       200,
		NodeWidth:        250,
		HeaderHeight:     25,
		RowHeight:        22,
		Padding:          10,
		MinNodeHeight:    60,
		MaxVisibleRows:   10,
		LeafSubtreeWidth: 300,
		PrimitiveWidth:   120,
		PrimitiveHeight:  40,
		MaxRowRunes:      30,
		MaxLabelRunes:    20,
	}
}

// VisibleRows returns how many of n rows are drawn.
func (m Metrics) VisibleRows(n int) int {
	if n > m.MaxVisibleRows {
		return m.MaxVisibleRows
	}
	return n
}

// HiddenRows returns how many of n rows are summarized instead of drawn.
func (m Metrics) HiddenRows(n int) int {
	if n > m.MaxVisibleRows {
		return n - m.MaxVisibleRows
	}
	return 0
}

// Builder converts JSON trees into layout graphs. A Builder can be reused;
// every Build call resets the node ID counter and produces a fresh graph.
type Builder struct {
	metrics Metrics
	nextID  int
}

// NewBuilder creates a Builder with the given metrics.
func NewBuilder(m Metrics) *Builder {
	return &Builder{metrics: m}
}

// Metrics returns the builder's layout constants.
func (b *Builder) Metrics() Metrics { return b.metrics }

// Build lays out the given tree and returns the graph.
//
// A null root produces an empty graph: there is nothing to draw, and this is
// not an error. Any other root produces at least one node.
func (b *Builder) Build(v *jsontree.Value) *Graph {
	b.nextID = 0
	g := &Graph{}

	if v.IsNull() {
		return g
	}

	b.build(g, v, -1, "", 0, 0, jsonpath.Root)
	return g
}

// build creates the node for v, its edge from the parent, and recursively
// its structural children. It returns the horizontal width the subtree
// consumed, which the caller uses to advance its own child offset.
func (b *Builder) build(g *Graph, v *jsontree.Value, parentID int, edgeLabel string, depth int, xOff float64, path jsonpath.Path) float64 {
	m := b.metrics

	id := b.nextID
	b.nextID++

	node := Node{
		ID:   id,
		Kind: v.Kind(),
		Path: path.Clone(),
		X:    m.BaseX + xOff,
		Y:    m.BaseY + float64(depth)*m.RowSpacing,
	}

	switch v.Kind() {
	case jsontree.KindObject:
		node.Label = fmt.Sprintf("Object (%d)", v.Len())
		rows := make([]KeyRow, 0, v.Len())
		for pair := v.Object().Oldest(); pair != nil; pair = pair.Next() {
			rows = append(rows, KeyRow{
				Key:       pair.Key,
				Display:   displayString(pair.Value, m.MaxRowRunes),
				Kind:      pair.Value.Kind(),
				Reference: pair.Value.Kind().IsContainer(),
			})
		}
		node.Content = ObjectContent{Rows: rows}
		node.Width, node.Height = m.NodeWidth, b.tableHeight(len(rows))
	case jsontree.KindArray:
		node.Label = fmt.Sprintf("Array [%d]", v.Len())
		elems := v.Array()
		rows := make([]IndexRow, len(elems))
		for i, elem := range elems {
			rows[i] = IndexRow{
				Index:     i,
				Display:   displayString(elem, m.MaxRowRunes),
				Kind:      elem.Kind(),
				Reference: elem.Kind().IsContainer(),
			}
		}
		node.Content = ArrayContent{Rows: rows}
		node.Width, node.Height = m.NodeWidth, b.tableHeight(len(rows))
	default:
		// Primitive roots get a single small node; primitives elsewhere
		// never reach build.
		text := displayString(v, m.MaxLabelRunes)
		node.Label = text
		node.Content = PrimitiveContent{Text: text}
		node.Width, node.Height = m.PrimitiveWidth, m.PrimitiveHeight
	}

	g.Nodes = append(g.Nodes, node)

	if parentID >= 0 {
		g.Edges = append(g.Edges, Edge{From: parentID, To: id, Label: edgeLabel})
	}

	// Recurse into structural children, packing subtrees left to right.
	childOffset := xOff
	totalWidth := 0.0

	switch v.Kind() {
	case jsontree.KindObject:
		for pair := v.Object().Oldest(); pair != nil; pair = pair.Next() {
			if !pair.Value.Kind().IsContainer() {
				continue
			}
			w := b.build(g, pair.Value, id, pair.Key, depth+1, childOffset, path.Child(pair.Key))
			childOffset += w
			totalWidth += w
		}
	case jsontree.KindArray:
		for i, elem := range v.Array() {
			if !elem.Kind().IsContainer() {
				continue
			}
			label := "[" + strconv.Itoa(i) + "]"
			w := b.build(g, elem, id, label, depth+1, childOffset, path.ChildIndex(i))
			childOffset += w
			totalWidth += w
		}
	}

	if totalWidth > 0 {
		return totalWidth
	}
	return m.LeafSubtreeWidth
}

// tableHeight computes a table node's height from its row count, capped at
// MaxVisibleRows and floored at MinNodeHeight.
func (b *Builder) tableHeight(rows int) float64 {
	m := b.metrics
	h := m.HeaderHeight + float64(m.VisibleRows(rows))*m.RowHeight + m.Padding
	if h < m.MinNodeHeight {
		return m.MinNodeHeight
	}
	return h
}
