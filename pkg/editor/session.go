package editor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/history"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
	"github.com/jsoncanvas/jsoncanvas/pkg/layout"
	"github.com/jsoncanvas/jsoncanvas/pkg/observability"
	"github.com/jsoncanvas/jsoncanvas/pkg/textsync"
)

// Operation is one graph-side edit applied through ApplyEdit.
type Operation interface {
	isOperation()
	kind() string
}

// Update replaces the value at the target path with the coerced fragment.
type Update struct {
	Raw string
}

// Delete removes the value at the target path from its parent container.
type Delete struct{}

// Add inserts a coerced fragment into the container at the target path.
// Key names the new object member; arrays ignore it and append.
type Add struct {
	Key string
	Raw string
}

// Rename moves an object member from OldKey to NewKey. The renamed member
// moves to the end of the object.
type Rename struct {
	OldKey string
	NewKey string
}

func (Update) isOperation() {}
func (Delete) isOperation() {}
func (Add) isOperation()    {}
func (Rename) isOperation() {}

func (Update) kind() string { return "update" }
func (Delete) kind() string { return "delete" }
func (Add) kind() string    { return "add" }
func (Rename) kind() string { return "rename" }

// Session is the single-document edit engine. See the package documentation
// for the ownership and concurrency contract.
type Session struct {
	id  uuid.UUID
	cfg Config

	text   string
	value  *jsontree.Value // last successfully parsed tree, kept while invalid
	valErr error

	hist    *history.Stack
	builder *layout.Builder
	graph   *layout.Graph

	mode Mode

	// One-shot signals, cleared by their Take* accessors.
	selectedNode   int
	hasSelection   bool
	targetLine     int
	rebuildPending bool
}

// NewSession creates an empty session. Load or SetText supplies the document.
func NewSession(cfg Config) *Session {
	return &Session{
		id:      uuid.New(),
		cfg:     cfg,
		hist:    history.New(cfg.HistoryCapacity),
		builder: layout.NewBuilder(cfg.Layout),
		graph:   &layout.Graph{},
		mode:    Idle{},
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Text returns the current text buffer.
func (s *Session) Text() string { return s.text }

// Valid reports whether the current text parses as JSON.
func (s *Session) Valid() bool { return s.value != nil && s.valErr == nil }

// ValidationError returns the current parse failure, or nil while valid.
func (s *Session) ValidationError() error { return s.valErr }

// Value returns the last successfully parsed tree. While the text is
// invalid this is the previous valid tree, retained so the graph view stays
// usable; nil before the first valid document.
func (s *Session) Value() *jsontree.Value { return s.value }

// Graph returns the layout graph from the most recent rebuild.
func (s *Session) Graph() *layout.Graph { return s.graph }

// Mode returns the active interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// CanUndo reports whether an undo snapshot exists.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo snapshot exists.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Load replaces the document without recording history, for the initial
// document or an external reload. Returns the validation error, if any; the
// text is kept either way.
func (s *Session) Load(ctx context.Context, text string) error {
	s.text = text
	err := s.validate(ctx)
	if s.Valid() {
		s.rebuildPending = true
	}
	return err
}

// SetText replaces the text buffer as one undoable edit and re-validates.
// The graph is not rebuilt here: the caller decides when a batch of text
// changes is committed and requests the rebuild, so layout does not thrash
// on every keystroke.
func (s *Session) SetText(ctx context.Context, text string) error {
	if text == s.text {
		return s.valErr
	}
	s.push(ctx)
	s.text = text
	return s.validate(ctx)
}

// ApplyEdit clones the current tree, applies op at path, and on success
// commits the mutated clone: history records the pre-edit text, the text is
// regenerated by canonical pretty-printing, and a rebuild is requested. On
// failure the document, history, and graph are untouched.
func (s *Session) ApplyEdit(ctx context.Context, path jsonpath.Path, op Operation) error {
	if !s.Valid() {
		return errors.New(errors.ErrCodeInvalidJSON, "cannot edit while the document is invalid")
	}

	clone := s.value.Clone()

	var err error
	switch o := op.(type) {
	case Update:
		err = jsonpath.Update(clone, path, jsontree.ParseEdited(o.Raw))
	case Delete:
		err = jsonpath.Delete(clone, path)
	case Add:
		err = jsonpath.Add(clone, path, o.Key, o.Raw)
	case Rename:
		err = jsonpath.Rename(clone, path, o.OldKey, o.NewKey)
	default:
		err = errors.New(errors.ErrCodeInternal, "unknown operation %T", op)
	}

	observability.Session().OnMutation(ctx, op.kind(), path.String(), err)
	if err != nil {
		return err
	}

	s.push(ctx)
	s.value = clone
	s.valErr = nil
	s.text = jsontree.Pretty(clone)
	s.rebuildPending = true
	return nil
}

// Undo restores the previous text snapshot. Returns false when the undo
// stack is empty.
func (s *Session) Undo(ctx context.Context) bool {
	text, ok := s.hist.Undo(s.text)
	if !ok {
		return false
	}
	observability.Session().OnHistory(ctx, "undo", s.hist.UndoDepth(), s.hist.RedoDepth())
	s.restore(ctx, text)
	return true
}

// Redo re-applies the most recently undone snapshot. Returns false when the
// redo stack is empty.
func (s *Session) Redo(ctx context.Context) bool {
	text, ok := s.hist.Redo(s.text)
	if !ok {
		return false
	}
	observability.Session().OnHistory(ctx, "redo", s.hist.UndoDepth(), s.hist.RedoDepth())
	s.restore(ctx, text)
	return true
}

// ApplyPrettyPrint re-serializes the document with the canonical 2-space
// indent as one undoable edit.
func (s *Session) ApplyPrettyPrint(ctx context.Context) error {
	return s.reserialize(ctx, jsontree.Pretty)
}

// ApplyCompact re-serializes the document without insignificant whitespace
// as one undoable edit.
func (s *Session) ApplyCompact(ctx context.Context) error {
	return s.reserialize(ctx, jsontree.Compact)
}

func (s *Session) reserialize(ctx context.Context, format func(*jsontree.Value) string) error {
	if !s.Valid() {
		return errors.New(errors.ErrCodeInvalidJSON, "cannot reformat while the document is invalid")
	}
	text := format(s.value)
	if text == s.text {
		return nil
	}
	s.push(ctx)
	s.text = text
	return nil
}

// RebuildGraph regenerates the layout graph from the last valid tree and
// clears any pending rebuild request. Nodes and edges are fully replaced;
// only paths carry identity across rebuilds.
func (s *Session) RebuildGraph(ctx context.Context) {
	s.rebuildPending = false
	if s.value == nil {
		s.graph = &layout.Graph{}
		return
	}

	observability.Layout().OnRebuildStart(ctx)
	start := time.Now()
	s.graph = s.builder.Build(s.value)
	observability.Layout().OnRebuildComplete(ctx, len(s.graph.Nodes), len(s.graph.Edges), time.Since(start))
}

// ============================================================================
// Edit dialogs
// ============================================================================

// BeginCellEdit opens the inline edit dialog for the primitive at path,
// replacing any dialog already open. The draft starts as the cell's display
// text.
func (s *Session) BeginCellEdit(path jsonpath.Path) error {
	if !s.Valid() {
		return errors.New(errors.ErrCodeInvalidJSON, "cannot edit while the document is invalid")
	}
	v, err := jsonpath.Navigate(s.value, path)
	if err != nil {
		return err
	}
	draft, err := jsontree.DisplayText(v)
	if err != nil {
		return err
	}
	s.mode = EditingCell{Path: path.Clone(), Kind: v.Kind(), Draft: draft}
	return nil
}

// CommitCellEdit validates raw against the cell's original kind and applies
// the update. A rejected value keeps the dialog open with the invalid draft
// retained; success closes the dialog.
func (s *Session) CommitCellEdit(ctx context.Context, raw string) error {
	m, ok := s.mode.(EditingCell)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "no cell edit in progress")
	}

	fragment, err := jsontree.CoerceTyped(raw, m.Kind)
	if err != nil {
		m.Draft = raw
		s.mode = m
		return err
	}

	if err := s.ApplyEdit(ctx, m.Path, Update{Raw: fragment}); err != nil {
		m.Draft = raw
		s.mode = m
		return err
	}
	s.mode = Idle{}
	return nil
}

// BeginAddEntry opens the add dialog for the container at path, replacing
// any dialog already open.
func (s *Session) BeginAddEntry(path jsonpath.Path) error {
	if !s.Valid() {
		return errors.New(errors.ErrCodeInvalidJSON, "cannot edit while the document is invalid")
	}
	v, err := jsonpath.Navigate(s.value, path)
	if err != nil {
		return err
	}
	if !v.Kind().IsContainer() {
		return errors.New(errors.ErrCodeUnsupported, "cannot add entries to a %s value", v.Kind())
	}
	s.mode = AddingEntry{Path: path.Clone(), Kind: v.Kind()}
	return nil
}

// CommitAddEntry inserts the drafted entry. Failure keeps the dialog open
// with both drafts retained; success closes it.
func (s *Session) CommitAddEntry(ctx context.Context, key, raw string) error {
	m, ok := s.mode.(AddingEntry)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "no add dialog in progress")
	}

	if err := s.ApplyEdit(ctx, m.Path, Add{Key: key, Raw: raw}); err != nil {
		m.KeyDraft, m.ValueDraft = key, raw
		s.mode = m
		return err
	}
	s.mode = Idle{}
	return nil
}

// BeginRenameKey opens the rename dialog for an existing object key,
// replacing any dialog already open.
func (s *Session) BeginRenameKey(path jsonpath.Path, oldKey string) error {
	if !s.Valid() {
		return errors.New(errors.ErrCodeInvalidJSON, "cannot edit while the document is invalid")
	}
	v, err := jsonpath.Navigate(s.value, path)
	if err != nil {
		return err
	}
	if v.Kind() != jsontree.KindObject {
		return errors.New(errors.ErrCodeUnsupported, "cannot rename keys on a %s value", v.Kind())
	}
	if _, exists := v.Get(oldKey); !exists {
		return errors.New(errors.ErrCodeKeyNotFound, "property %q not found", oldKey)
	}
	s.mode = RenamingKey{Path: path.Clone(), OldKey: oldKey, Draft: oldKey}
	return nil
}

// CommitRename applies the drafted rename. A conflict or lookup failure
// keeps the dialog open with the draft retained; success closes it.
func (s *Session) CommitRename(ctx context.Context, newKey string) error {
	m, ok := s.mode.(RenamingKey)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "no rename dialog in progress")
	}

	if err := s.ApplyEdit(ctx, m.Path, Rename{OldKey: m.OldKey, NewKey: newKey}); err != nil {
		m.Draft = newKey
		s.mode = m
		return err
	}
	s.mode = Idle{}
	return nil
}

// CancelMode closes any open dialog and returns to idle.
func (s *Session) CancelMode() {
	s.mode = Idle{}
}

// ============================================================================
// View synchronization
// ============================================================================

// ClickLine resolves a clicked 1-indexed text line to a graph node and
// records it as the pending selection. A no-op when text-to-graph sync is
// disabled or nothing resolves.
func (s *Session) ClickLine(line int) {
	if !s.cfg.SyncTextToGraph {
		return
	}
	path, ok := textsync.PathForLine(s.text, line)
	if !ok {
		return
	}
	if id, ok := textsync.SelectNodeByPath(s.graph, path); ok {
		s.selectedNode = id
		s.hasSelection = true
	}
}

// FocusNode records a pending text scroll to the line of the given node's
// path. A no-op when graph-to-text sync is disabled or the node is unknown.
func (s *Session) FocusNode(id int) {
	if !s.cfg.SyncGraphToText {
		return
	}
	n, ok := s.graph.NodeByID(id)
	if !ok {
		return
	}
	if line, ok := textsync.LineForPath(s.text, n.Path); ok {
		s.targetLine = line
	}
}

// SelectByPath records the node best matching path as the pending
// selection, using exact-then-longest-prefix resolution.
func (s *Session) SelectByPath(path jsonpath.Path) bool {
	id, ok := textsync.SelectNodeByPath(s.graph, path)
	if !ok {
		return false
	}
	s.selectedNode = id
	s.hasSelection = true
	return true
}

// TakeSelectedNode returns and clears the pending node selection.
func (s *Session) TakeSelectedNode() (int, bool) {
	if !s.hasSelection {
		return 0, false
	}
	s.hasSelection = false
	return s.selectedNode, true
}

// TakeTargetLine returns and clears the pending text scroll target.
func (s *Session) TakeTargetLine() (int, bool) {
	if s.targetLine == 0 {
		return 0, false
	}
	line := s.targetLine
	s.targetLine = 0
	return line, true
}

// TakeRebuildRequest returns and clears the pending rebuild flag.
func (s *Session) TakeRebuildRequest() bool {
	pending := s.rebuildPending
	s.rebuildPending = false
	return pending
}

// ============================================================================
// Internals
// ============================================================================

// push snapshots the current text onto the undo stack, clearing redo.
func (s *Session) push(ctx context.Context) {
	s.hist.Push(s.text)
	observability.Session().OnHistory(ctx, "push", s.hist.UndoDepth(), s.hist.RedoDepth())
}

// restore swaps in text from a history exchange and re-validates. A valid
// restored document schedules a rebuild.
func (s *Session) restore(ctx context.Context, text string) {
	s.text = text
	_ = s.validate(ctx)
	if s.Valid() {
		s.rebuildPending = true
	}
}

// validate re-parses the text. On success the parsed tree replaces the
// current one; on failure the previous tree is retained and the error is
// recorded.
func (s *Session) validate(ctx context.Context) error {
	v, err := jsontree.Parse(s.text)
	observability.Session().OnValidation(ctx, len(s.text), err)
	if err != nil {
		s.valErr = err
		return err
	}
	s.value = v
	s.valErr = nil
	return nil
}
