// Package editor holds the edit session that ties the engine together: the
// document (text plus parsed tree plus validation state), the bounded undo
// history, the derived layout graph, and the exclusive interaction mode for
// in-graph edit dialogs.
//
// A Session owns exactly one document. It is synchronous and not safe for
// concurrent use; a host editing several documents runs one Session per
// document. Mutations follow a clone-then-commit discipline: every graph
// edit operates on a detached copy of the tree and replaces the live
// document only on success, so a failed operation can never leave the
// document partially mutated.
//
// Selection, scroll, and rebuild requests are one-shot signals consumed via
// the Take* methods: reading a signal clears it, so a renderer polling every
// frame reacts to each request exactly once.
package editor
