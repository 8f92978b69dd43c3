package layout

import (
	"fmt"

	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

// Node is one positioned graph node. Only Object and Array values become
// nodes (plus a single node for a primitive document root); their primitive
// children render as rows inside Content.
type Node struct {
	// ID is unique within one Build call, assigned in pre-order.
	ID int
	// Label is the display header, e.g. "Object (3)" or "Array [2]".
	Label string
	// Kind is the underlying JSON value kind.
	Kind jsontree.Kind
	// Path addresses the corresponding value in the document tree.
	Path jsonpath.Path
	// X, Y is the top-left corner in world coordinates.
	X, Y float64
	// Width, Height is the drawn size in world coordinates.
	Width, Height float64
	// Content holds the node's inline rows or primitive text.
	Content Content
}

// Edge connects a parent structural node to a child structural node.
// Object children are labeled with their key, array children with "[i]".
type Edge struct {
	From  int
	To    int
	Label string
}

// Graph is the complete layout output for one document.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// NodeByID returns the node with the given id.
func (g *Graph) NodeByID(id int) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// NodeByPath returns the node whose path exactly matches p.
func (g *Graph) NodeByPath(p jsonpath.Path) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].Path.Equal(p) {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// Content is the inline body of a node: object rows, array rows, or the
// text of a primitive root. Exactly one of the three implementations is
// attached to every node.
type Content interface {
	isContent()
	// RowCount returns the number of inline rows (0 for primitive text).
	RowCount() int
}

// KeyRow is one member row inside an object node.
type KeyRow struct {
	Key     string
	Display string
	Kind    jsontree.Kind
	// Reference marks rows whose value is a child structural node.
	// Reference rows are rendered distinctly and are never inline-editable.
	Reference bool
}

// IndexRow is one element row inside an array node.
type IndexRow struct {
	Index     int
	Display   string
	Kind      jsontree.Kind
	Reference bool
}

// ObjectContent lists an object node's members in insertion order.
type ObjectContent struct {
	Rows []KeyRow
}

func (ObjectContent) isContent()      {}
func (c ObjectContent) RowCount() int { return len(c.Rows) }

// ArrayContent lists an array node's elements in index order.
type ArrayContent struct {
	Rows []IndexRow
}

func (ArrayContent) isContent()      {}
func (c ArrayContent) RowCount() int { return len(c.Rows) }

// PrimitiveContent is the display text of a primitive document root.
type PrimitiveContent struct {
	Text string
}

func (PrimitiveContent) isContent()    {}
func (PrimitiveContent) RowCount() int { return 0 }

// displayString renders a value for an inline row or reference placeholder.
// Container values show a member-count summary, strings are quoted and
// truncated, and the remaining primitives use their JSON literals.
func displayString(v *jsontree.Value, maxRunes int) string {
	switch v.Kind() {
	case jsontree.KindObject:
		return fmt.Sprintf("{ %d }", v.Len())
	case jsontree.KindArray:
		return fmt.Sprintf("[ %d ]", v.Len())
	case jsontree.KindString:
		return `"` + truncate(v.Str(), maxRunes) + `"`
	case jsontree.KindNumber:
		return v.NumberLiteral()
	case jsontree.KindBool:
		if v.BoolVal() {
			return "true"
		}
		return "false"
	}
	return "null"
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
