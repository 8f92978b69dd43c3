package jsontree

import (
	"math"
	"strconv"
	"strings"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
)

// ParseEdited converts a raw cell-edit fragment into a typed Value.
//
// The precedence is fixed and evaluated in order:
//  1. Quoted ("...") fragments become a String holding the inner text
//     verbatim. No escape processing is applied.
//  2. Fragments that fully parse as a finite float64 become a Number,
//     normalized to the shortest round-tripping literal.
//  3. "true"/"false" (case-insensitive) become a Boolean.
//  4. "null" (case-insensitive) becomes Null.
//  5. Anything else becomes a String holding the fragment verbatim.
//
// Non-finite floats (NaN, Inf) have no JSON representation and fall through
// to the later rules.
func ParseEdited(raw string) *Value {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return String(raw[1 : len(raw)-1])
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return NumberFloat(f)
	}
	switch strings.ToLower(raw) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null()
	}
	return String(raw)
}

// DisplayText is the inverse of [ParseEdited] for primitive values: the
// returned text, fed back through ParseEdited, yields an equal Value.
// Strings are wrapped in double quotes; numbers, booleans, and null use
// their JSON literals. Container values cannot be edited inline and
// return an UNSUPPORTED error.
func DisplayText(v *Value) (string, error) {
	switch v.kind {
	case KindString:
		return `"` + v.str + `"`, nil
	case KindNumber:
		return v.str, nil
	case KindBool:
		if v.b {
			return "true", nil
		}
		return "false", nil
	case KindNull:
		return "null", nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "%s values cannot be edited inline", v.kind)
}

// CoerceTyped validates a raw edit against the cell's original kind and
// returns the canonical fragment to feed into [ParseEdited].
//
// Number cells require a parseable finite float; Boolean cells require
// true/false (case-insensitive, normalized to lowercase); Null cells accept
// only "null". String cells always validate and are re-quoted. Container
// kinds are rejected. On failure the fragment is not applied and the caller
// keeps the edit dialog open with the invalid text.
func CoerceTyped(raw string, kind Kind) (string, error) {
	switch kind {
	case KindString:
		return `"` + raw + `"`, nil
	case KindNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", errors.New(errors.ErrCodeInvalidValue, "%q is not a number", raw)
		}
		return raw, nil
	case KindBool:
		lower := strings.ToLower(raw)
		if lower != "true" && lower != "false" {
			return "", errors.New(errors.ErrCodeInvalidValue, "%q is not true or false", raw)
		}
		return lower, nil
	case KindNull:
		if strings.ToLower(raw) != "null" {
			return "", errors.New(errors.ErrCodeInvalidValue, "null cells accept only null, got %q", raw)
		}
		return "null", nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "%s cells cannot be edited inline", kind)
}
