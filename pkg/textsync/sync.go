package textsync

import (
	"strings"

	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
	"github.com/jsoncanvas/jsoncanvas/pkg/layout"
)

// LineForPath returns the 1-indexed line where path appears in text.
//
// The scan walks text line by line with a cursor over the path segments: a
// line matches the pending segment when it contains the segment as a quoted
// substring. When all segments match, the last matching line is returned.
// When only a prefix matches, the line of the deepest matched segment is
// returned instead. The empty path always resolves to line 1.
//
// Array index segments rarely appear quoted in text, so paths through arrays
// usually resolve to the line of the nearest enclosing object key.
func LineForPath(text string, path jsonpath.Path) (int, bool) {
	if len(path) == 0 {
		return 1, true
	}

	matched := 0
	segIdx := 0

	for lineNum, line := range strings.Split(text, "\n") {
		if segIdx >= len(path) {
			break
		}
		if strings.Contains(line, `"`+path[segIdx]+`"`) {
			matched = lineNum + 1
			segIdx++
			if segIdx == len(path) {
				return matched, true
			}
		}
	}

	if matched > 0 {
		return matched, true
	}
	return 0, false
}

// PathForLine returns a best-effort path for the given 1-indexed line.
//
// The scan walks lines 1 through target and appends every object key it
// sees, where a key is the first quoted substring on a line followed by a
// colon. Nesting is not tracked, so keys of already-closed siblings leak
// into the result; this is the documented trade-off for not maintaining a
// full source map.
func PathForLine(text string, target int) (jsonpath.Path, bool) {
	if target < 1 {
		return nil, false
	}
	lines := strings.Split(text, "\n")
	if target > len(lines) {
		return nil, false
	}

	var path jsonpath.Path
	for _, line := range lines[:target] {
		if key, ok := keyOnLine(line); ok {
			path = append(path, key)
		}
	}

	if len(path) == 0 {
		return nil, false
	}
	return path, true
}

// keyOnLine extracts the first quoted substring on the line when a colon
// follows it.
func keyOnLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	start := strings.IndexByte(trimmed, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(trimmed[start+1:], '"')
	if end < 0 {
		return "", false
	}

	rest := strings.TrimLeft(trimmed[start+1+end+1:], " \t")
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return trimmed[start+1 : start+1+end], true
}

// SelectNodeByPath returns the ID of the graph node matching path.
//
// An exact path match wins. Otherwise the node sharing the longest common
// path prefix with the target is chosen, requiring at least one shared
// segment; ties keep the first node in graph order. Returns false when no
// node shares any prefix, including for any target on an empty graph.
func SelectNodeByPath(g *layout.Graph, path jsonpath.Path) (int, bool) {
	for _, n := range g.Nodes {
		if n.Path.Equal(path) {
			return n.ID, true
		}
	}

	bestID := -1
	bestLen := 0
	for _, n := range g.Nodes {
		l := n.Path.CommonPrefixLen(path)
		if l > bestLen {
			bestID = n.ID
			bestLen = l
		}
	}

	if bestID < 0 {
		return 0, false
	}
	return bestID, true
}
