package editor

import (
	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

// Mode is the session's graph-side interaction state. Exactly one mode is
// active at a time; beginning any dialog replaces whatever was in progress,
// which makes the mutual exclusivity structural rather than conventional.
type Mode interface {
	isMode()
}

// Idle means no edit dialog is open.
type Idle struct{}

func (Idle) isMode() {}

// EditingCell is an inline edit of a primitive value.
type EditingCell struct {
	// Path addresses the primitive being edited.
	Path jsonpath.Path
	// Kind is the cell's original kind; commits are validated against it.
	Kind jsontree.Kind
	// Draft is the dialog text. After a rejected commit it holds the
	// invalid input so the user can correct it in place.
	Draft string
}

func (EditingCell) isMode() {}

// AddingEntry is an in-progress insertion into a container.
type AddingEntry struct {
	// Path addresses the receiving Object or Array.
	Path jsonpath.Path
	// Kind is the container's kind; arrays ignore KeyDraft.
	Kind jsontree.Kind
	// KeyDraft and ValueDraft hold the dialog inputs.
	KeyDraft   string
	ValueDraft string
}

func (AddingEntry) isMode() {}

// RenamingKey is an in-progress rename of an object key.
type RenamingKey struct {
	// Path addresses the Object owning the key.
	Path jsonpath.Path
	// OldKey is the key being renamed.
	OldKey string
	// Draft is the proposed new key.
	Draft string
}

func (RenamingKey) isMode() {}
