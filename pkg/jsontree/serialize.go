package jsontree

import (
	"encoding/json"
	"strings"
)

// Indent is the canonical pretty-print indentation unit.
const Indent = "  "

// Pretty serializes v with 2-space indentation. The output parses back to an
// equal Value (member order preserved, number literals verbatim).
func Pretty(v *Value) string {
	var b strings.Builder
	writeValue(&b, v, 0, true)
	return b.String()
}

// Compact serializes v with no insignificant whitespace.
func Compact(v *Value) string {
	var b strings.Builder
	writeValue(&b, v, 0, false)
	return b.String()
}

func writeValue(b *strings.Builder, v *Value, depth int, indent bool) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.str)
	case KindString:
		b.WriteString(quote(v.str))
	case KindArray:
		writeArray(b, v, depth, indent)
	case KindObject:
		writeObject(b, v, depth, indent)
	}
}

func writeArray(b *strings.Builder, v *Value, depth int, indent bool) {
	if len(v.arr) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, elem := range v.arr {
		if i > 0 {
			b.WriteByte(',')
		}
		if indent {
			b.WriteByte('\n')
			writeIndent(b, depth+1)
		}
		writeValue(b, elem, depth+1, indent)
	}
	if indent {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, v *Value, depth int, indent bool) {
	if v.obj.Len() == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	first := true
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			b.WriteByte(',')
		}
		first = false
		if indent {
			b.WriteByte('\n')
			writeIndent(b, depth+1)
		}
		b.WriteString(quote(pair.Key))
		b.WriteByte(':')
		if indent {
			b.WriteByte(' ')
		}
		writeValue(b, pair.Value, depth+1, indent)
	}
	if indent {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteByte('}')
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(Indent)
	}
}

// quote produces a JSON string literal with standard escaping.
func quote(s string) string {
	// encoding/json never fails on a string input.
	out, _ := json.Marshal(s)
	return string(out)
}
