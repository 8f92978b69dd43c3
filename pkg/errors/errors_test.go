package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeKeyNotFound, "property %q not found", "name"),
			want: `KEY_NOT_FOUND: property "name" not found`,
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeInvalidJSON, fmt.Errorf("unexpected end of input"), "document is not valid JSON"),
			want: "INVALID_JSON: document is not valid JSON: unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeKeyConflict, "property %q already exists", "id")

	if !Is(err, ErrCodeKeyConflict) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeKeyNotFound) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeKeyConflict) {
		t.Error("Is() = true for plain error")
	}

	// Wrapped errors should still match by code.
	wrapped := fmt.Errorf("apply edit: %w", err)
	if !Is(wrapped, ErrCodeKeyConflict) {
		t.Error("Is() = false for wrapped error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("offset 12")
	err := Wrap(ErrCodeInvalidJSON, cause, "parse failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeIndexOutOfRange, "index 5 out of range")); got != ErrCodeIndexOutOfRange {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeIndexOutOfRange)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q for plain error, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeEmptyKey, "property name cannot be empty")
	if got := UserMessage(err); got != "property name cannot be empty" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage() = %q for plain error", got)
	}
}
