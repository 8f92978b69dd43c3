// Package jsonpath addresses and mutates locations inside a jsontree.Value.
//
// A [Path] is an ordered list of string segments: object segments are
// property names, array segments are base-10 indices encoded as strings.
// Resolution is total: a path either resolves to exactly one location or the
// operation fails with a coded error. There is no partial resolution.
//
// The mutators (Update, Delete, Add, Rename) validate before touching the
// tree, so a failed call leaves the tree exactly as it was. Callers that need
// atomic commit semantics across re-serialization mutate a clone and swap it
// in on success; see pkg/editor.
//
// Deleting an array element shifts later siblings down and renumbers their
// paths. Callers must re-derive paths from the rebuilt graph instead of
// caching paths across a delete.
package jsonpath
