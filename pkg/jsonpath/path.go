package jsonpath

import (
	"strconv"
	"strings"
)

// Path addresses one location in a JSON tree, from the root down.
// The empty path addresses the root itself.
type Path []string

// Root is the empty path.
var Root = Path{}

// Parse splits a dot-separated path expression into segments.
// "items.0.name" addresses root → "items" → index 0 → "name". The empty
// string parses to the root path. Keys containing literal dots cannot be
// expressed in this notation; this is a CLI convenience, not the engine's
// internal representation.
func Parse(expr string) Path {
	if expr == "" {
		return Root
	}
	return Path(strings.Split(expr, "."))
}

// String renders the path in dot notation; the root path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	return strings.Join(p, ".")
}

// Child returns a new path extended by one segment.
// The receiver is never modified and shares no backing storage with the result.
func (p Path) Child(segment string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = segment
	return out
}

// ChildIndex returns a new path extended by an array index segment.
func (p Path) ChildIndex(i int) Path {
	return p.Child(strconv.Itoa(i))
}

// Parent returns the path without its last segment and that segment.
// ok is false for the root path.
func (p Path) Parent() (parent Path, last string, ok bool) {
	if len(p) == 0 {
		return nil, "", false
	}
	return p[:len(p)-1], p[len(p)-1], true
}

// Equal reports whether two paths have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the number of leading segments shared with other,
// stopping at the first divergence.
func (p Path) CommonPrefixLen(other Path) int {
	n := 0
	for n < len(p) && n < len(other) && p[n] == other[n] {
		n++
	}
	return n
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}
