package jsontree

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which of the six JSON value kinds a [Value] holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase kind name as it appears in node labels
// and serialized graphs.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// IsContainer reports whether the kind is Object or Array.
// Containers become structural graph nodes; the other kinds render inline.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}

// Object is an insertion-ordered string-to-Value map.
// Iteration order is the order keys were first set; Set on an existing key
// keeps its position, Delete removes it without disturbing the rest.
type Object = orderedmap.OrderedMap[string, *Value]

// Value is one JSON value. The zero value is null.
//
// Value is a mutable tree: container payloads hold child *Value pointers, and
// path mutations replace or splice children in place. Callers that need
// transactional semantics should mutate a [Value.Clone] and commit on success.
type Value struct {
	kind Kind
	str  string // string payload, or the number literal for KindNumber
	b    bool
	arr  []*Value
	obj  *Object
}

// Null returns a fresh null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, str: s} }

// Number returns a number value holding the given JSON literal.
// The literal is stored verbatim; it must already be a valid JSON number.
func Number(literal string) *Value { return &Value{kind: KindNumber, str: literal} }

// NumberFloat returns a number value for f, formatted with the shortest
// literal that round-trips through float64.
func NumberFloat(f float64) *Value {
	return &Value{kind: KindNumber, str: strconv.FormatFloat(f, 'g', -1, 64)}
}

// NewArray returns an array value containing the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, arr: elems}
}

// NewObject returns an empty object value.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: orderedmap.New[string, *Value]()}
}

// Kind returns the value's kind.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload. Valid only for KindString.
func (v *Value) Str() string { return v.str }

// BoolVal returns the boolean payload. Valid only for KindBool.
func (v *Value) BoolVal() bool { return v.b }

// NumberLiteral returns the stored JSON number literal. Valid only for KindNumber.
func (v *Value) NumberLiteral() string { return v.str }

// Float parses the number literal as a float64. Valid only for KindNumber.
func (v *Value) Float() (float64, error) {
	return strconv.ParseFloat(v.str, 64)
}

// Array returns the element slice of an array value, or nil for other kinds.
func (v *Value) Array() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the ordered member map of an object value, or nil for other kinds.
func (v *Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Len returns the number of members for objects, the number of elements for
// arrays, and 0 for every other kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return v.obj.Len()
	case KindArray:
		return len(v.arr)
	}
	return 0
}

// Append adds an element to the end of an array value.
// It is a no-op for other kinds.
func (v *Value) Append(elem *Value) {
	if v.kind == KindArray {
		v.arr = append(v.arr, elem)
	}
}

// RemoveIndex removes the element at i from an array value, shifting later
// elements down. Reports whether an element was removed.
func (v *Value) RemoveIndex(i int) bool {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return false
	}
	v.arr = append(v.arr[:i], v.arr[i+1:]...)
	return true
}

// Set inserts or overwrites a member on an object value.
// New keys append at the end; existing keys keep their position.
// It is a no-op for other kinds.
func (v *Value) Set(key string, val *Value) {
	if v.kind == KindObject {
		v.obj.Set(key, val)
	}
}

// Get looks up a member on an object value.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj.Get(key)
}

// Replace overwrites the receiver in place with the contents of other.
// This is how a navigated location is updated without touching its parent.
func (v *Value) Replace(other *Value) {
	*v = *other
}

// Clone returns a deep copy of the value. Mutating the copy never affects
// the original tree.
func (v *Value) Clone() *Value {
	switch v.kind {
	case KindArray:
		elems := make([]*Value, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.Clone()
		}
		return &Value{kind: KindArray, arr: elems}
	case KindObject:
		obj := orderedmap.New[string, *Value]()
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			obj.Set(pair.Key, pair.Value.Clone())
		}
		return &Value{kind: KindObject, obj: obj}
	default:
		c := *v
		return &c
	}
}

// Equal reports whether two values are structurally equal.
// Objects compare member-by-member in order, so two objects with the same
// members in different insertion order are not equal. Numbers compare by
// literal, so "1.0" and "1" are distinct.
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber, KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		p, q := v.obj.Oldest(), other.obj.Oldest()
		for p != nil && q != nil {
			if p.Key != q.Key || !p.Value.Equal(q.Value) {
				return false
			}
			p, q = p.Next(), q.Next()
		}
		return p == nil && q == nil
	}
	return false
}
