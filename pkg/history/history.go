// Package history provides bounded undo/redo over full-document snapshots.
//
// Every entry is the complete document text, not a diff: undo restores
// exactly the text captured before the mutation. Both stacks are bounded;
// pushing past capacity evicts the oldest entry.
package history

// DefaultCapacity bounds each stack when no explicit capacity is given.
const DefaultCapacity = 100

// Stack holds undo and redo snapshots of document text.
//
// The intended call pattern is push-before-mutate: callers push the
// pre-mutation text, then apply the change. Undo and redo exchange the
// caller's current text with the popped snapshot so the two stacks stay
// consistent without the Stack ever reading the live document.
//
// Stack is not safe for concurrent use; the engine is single-threaded by
// design and holds one Stack per session.
type Stack struct {
	undo []string
	redo []string
	cap  int
}

// New creates a Stack bounded at capacity entries per side.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{cap: capacity}
}

// Push records current as an undo snapshot and clears redo history.
// If the undo stack is full, the oldest snapshot is evicted.
func (s *Stack) Push(current string) {
	s.undo = appendBounded(s.undo, current, s.cap)
	s.redo = s.redo[:0]
}

// Undo pops the most recent undo snapshot, records current on the redo
// stack, and returns the snapshot. ok is false when there is nothing to undo.
func (s *Stack) Undo(current string) (text string, ok bool) {
	if len(s.undo) == 0 {
		return "", false
	}
	text = s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = appendBounded(s.redo, current, s.cap)
	return text, true
}

// Redo is the mirror of Undo.
func (s *Stack) Redo(current string) (text string, ok bool) {
	if len(s.redo) == 0 {
		return "", false
	}
	text = s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = appendBounded(s.undo, current, s.cap)
	return text, true
}

// CanUndo reports whether an undo snapshot is available.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth returns the number of stored undo snapshots.
func (s *Stack) UndoDepth() int { return len(s.undo) }

// RedoDepth returns the number of stored redo snapshots.
func (s *Stack) RedoDepth() int { return len(s.redo) }

// appendBounded appends text, evicting the oldest entry at capacity.
func appendBounded(stack []string, text string, capacity int) []string {
	if len(stack) >= capacity {
		copy(stack, stack[1:])
		stack = stack[:len(stack)-1]
	}
	return append(stack, text)
}
