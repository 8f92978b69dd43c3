// Package layout converts a JSON tree into a positioned node-and-edge graph.
//
// # Overview
//
// The builder walks the tree depth-first and produces one graph node per
// Object or Array value. Primitive children never become nodes; they appear
// as inline rows inside their parent's content. Every parent→child structural
// pair gets exactly one labeled edge.
//
// Positioning is a simple layered layout: each depth occupies a fixed
// vertical band, and subtrees pack left to right. A subtree reports the
// horizontal width it consumed, and the caller advances its child offset by
// that amount, so sibling subtrees never overlap. Nodes themselves have fixed
// width; only the consumed offset grows.
//
// # Determinism
//
// Node IDs are assigned in pre-order and reset on every Build call. Building
// the same tree twice yields graphs with identical node and edge counts,
// kinds, and relative positions.
//
// # Usage
//
//	b := layout.NewBuilder(layout.DefaultMetrics())
//	g := b.Build(value)
//	for _, n := range g.Nodes {
//	    // hand position, size, and content to the renderer
//	}
package layout
