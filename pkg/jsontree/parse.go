package jsontree

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	stderrors "errors"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
)

// Parse decodes text into a Value tree.
//
// Object member order follows the source text, and number literals are kept
// verbatim (no float round-trip). Exactly one JSON value is accepted; trailing
// non-whitespace content is an error. Errors carry the INVALID_JSON code and
// the decoder's message, including the byte offset for syntax errors.
func Parse(text string) (*Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, wrapParseError(err)
	}

	// Anything after the first value makes the document invalid.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, wrapParseError(err)
		}
		return nil, errors.New(errors.ErrCodeInvalidJSON, "unexpected trailing content %v after JSON value", tok)
	}

	return v, nil
}

func wrapParseError(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(errors.ErrCodeInvalidJSON, err, "unexpected end of JSON input")
	}
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.Wrap(errors.ErrCodeInvalidJSON, err, "syntax error at offset %d", syntaxErr.Offset)
	}
	return errors.Wrap(errors.ErrCodeInvalidJSON, err, "invalid JSON")
}

// decodeValue consumes one complete JSON value from dec.
func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := NewArray()
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(elem)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
