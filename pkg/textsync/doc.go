// Package textsync bridges the textual and structural views of a document.
//
// The text buffer and the layout graph are independent representations, so
// mapping between them is heuristic by design: LineForPath and PathForLine
// are textual scans, not source maps, and SelectNodeByPath falls back to the
// longest common path prefix when no node matches exactly. Callers should
// treat every result as best-effort navigation, never as an exact address.
package textsync
