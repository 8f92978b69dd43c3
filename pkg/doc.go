// Package pkg provides the core libraries for jsoncanvas JSON editing.
//
// # Overview
//
// jsoncanvas keeps two live views of one JSON document — the raw text and a
// structural node graph — and lets either side drive edits. The pkg
// directory is organized by pipeline stage:
//
//  1. [jsontree] - Parsed document model (ordered objects, literal-preserving
//     numbers, canonical serialization, edit-fragment coercion)
//  2. [jsonpath] - Path addressing and the mutation operations
//  3. [history] - Bounded undo/redo over text snapshots
//  4. [layout] - Layered tree layout, viewport, and minimap math
//  5. [textsync] - Heuristic text line ⇄ path ⇄ graph node resolution
//  6. [editor] - The edit session orchestrating all of the above
//  7. [export] - Graph output as JSON, Graphviz DOT, and SVG
//
// # Architecture
//
// The typical data flow through jsoncanvas:
//
//	Text buffer
//	     ↓
//	[jsontree] package (parse, validate)
//	     ↓
//	[layout] package (structural nodes + edges, positions)
//	     ↓
//	[editor] session (selection, dialogs, history)
//	     ↓
//	[jsonpath] mutations → canonical re-serialization → back to text
//
// # Quick Start
//
// Load a document, apply a path-addressed edit, and export the graph:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/jsoncanvas/jsoncanvas/pkg/editor"
//	    "github.com/jsoncanvas/jsoncanvas/pkg/export"
//	    "github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
//	)
//
//	ctx := context.Background()
//	session := editor.NewSession(editor.DefaultConfig())
//
//	// 1. Load and lay out the document
//	_ = session.Load(ctx, `{"user":{"name":"Alice"}}`)
//	session.RebuildGraph(ctx)
//
//	// 2. Apply a path-addressed edit
//	_ = session.ApplyEdit(ctx, jsonpath.Path{"user", "name"}, editor.Update{Raw: `"Bob"`})
//
//	// 3. Export the rebuilt graph
//	session.RebuildGraph(ctx)
//	_ = export.WriteJSON(session.Graph(), os.Stdout)
//
// Supporting packages: [errors] for coded, user-surfaceable failures,
// [observability] for pluggable instrumentation hooks, and [buildinfo] for
// ldflags-injected version metadata.
package pkg
