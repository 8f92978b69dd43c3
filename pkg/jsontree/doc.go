// Package jsontree defines the in-memory JSON document model for jsoncanvas.
//
// # Overview
//
// The central type is [Value], a tagged sum over the six JSON kinds. Unlike
// encoding/json's map-based decoding, object members keep their insertion
// order, which the engine preserves across every mutation and serialization.
// Numbers keep their source literal so that formatting round-trips exactly.
//
// # Usage
//
// Parse text into a tree, edit it, and serialize it back:
//
//	v, err := jsontree.Parse(`{"a":1,"b":2}`)
//	if err != nil {
//	    return err
//	}
//	text := jsontree.Pretty(v) // 2-space indent, key order preserved
//
// # Coercion
//
// Cell edits arrive as raw text fragments. [ParseEdited] converts a fragment
// into a typed Value using a fixed precedence (quoted string, number, boolean,
// null, bare string), and [DisplayText] produces the editable text back. The
// quoted-string rule takes the inner text verbatim without escape processing;
// this mirrors how cell edits behave in the graph view and is a deliberate
// simplification, not a JSON string unescape.
package jsontree
