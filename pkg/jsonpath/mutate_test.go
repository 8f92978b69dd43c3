package jsonpath

import (
	"testing"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

func mustParse(t *testing.T, text string) *jsontree.Value {
	t.Helper()
	v, err := jsontree.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func TestNavigate(t *testing.T) {
	root := mustParse(t, `{"user":{"name":"Alice","tags":[1,2,3]},"count":2}`)

	tests := []struct {
		name     string
		path     Path
		wantKind jsontree.Kind
		wantErr  errors.Code
	}{
		{name: "Root", path: Root, wantKind: jsontree.KindObject},
		{name: "ObjectKey", path: Path{"user"}, wantKind: jsontree.KindObject},
		{name: "NestedKey", path: Path{"user", "name"}, wantKind: jsontree.KindString},
		{name: "ArrayIndex", path: Path{"user", "tags", "1"}, wantKind: jsontree.KindNumber},
		{name: "MissingKey", path: Path{"missing"}, wantErr: errors.ErrCodeKeyNotFound},
		{name: "MissingNested", path: Path{"user", "missing"}, wantErr: errors.ErrCodeKeyNotFound},
		{name: "IndexOutOfRange", path: Path{"user", "tags", "3"}, wantErr: errors.ErrCodeIndexOutOfRange},
		{name: "NonNumericIndex", path: Path{"user", "tags", "x"}, wantErr: errors.ErrCodeInvalidPath},
		{name: "NegativeIndex", path: Path{"user", "tags", "-1"}, wantErr: errors.ErrCodeInvalidPath},
		{name: "DescendIntoPrimitive", path: Path{"count", "x"}, wantErr: errors.ErrCodePathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Navigate(root, tt.path)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("kind = %v, want %v", got.Kind(), tt.wantKind)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	root := mustParse(t, `{"a":1,"b":{"c":2}}`)

	if err := Update(root, Path{"b", "c"}, jsontree.String("done")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := jsontree.Compact(root); got != `{"a":1,"b":{"c":"done"}}` {
		t.Errorf("after update: %s", got)
	}

	// Failed update leaves the tree untouched.
	before := jsontree.Compact(root)
	if err := Update(root, Path{"missing"}, jsontree.Null()); !errors.Is(err, errors.ErrCodeKeyNotFound) {
		t.Fatalf("err = %v, want KEY_NOT_FOUND", err)
	}
	if got := jsontree.Compact(root); got != before {
		t.Error("failed update modified the tree")
	}
}

func TestUpdateRoot(t *testing.T) {
	root := mustParse(t, `{"a":1}`)
	if err := Update(root, Root, jsontree.NewArray(jsontree.Number("1"))); err != nil {
		t.Fatalf("Update root: %v", err)
	}
	if got := jsontree.Compact(root); got != `[1]` {
		t.Errorf("after root update: %s", got)
	}
}

func TestDeleteObjectKey(t *testing.T) {
	root := mustParse(t, `{"k":"v"}`)
	if err := Delete(root, Path{"k"}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := jsontree.Compact(root); got != `{}` {
		t.Errorf("after delete: %s, want {}", got)
	}
}

func TestDeleteArrayElementRenumbers(t *testing.T) {
	root := mustParse(t, `[1,2,3]`)
	if err := Delete(root, Path{"1"}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := jsontree.Compact(root); got != `[1,3]` {
		t.Errorf("after delete: %s, want [1,3]", got)
	}
	// Former index 2 is now addressable as index 1.
	v, err := Navigate(root, Path{"1"})
	if err != nil {
		t.Fatalf("Navigate after delete: %v", err)
	}
	if v.NumberLiteral() != "3" {
		t.Errorf("element at renumbered index 1 = %s, want 3", v.NumberLiteral())
	}
}

func TestDeleteFailures(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    Path
		wantErr errors.Code
	}{
		{"Root", `{"a":1}`, Root, errors.ErrCodeInvalidPath},
		{"MissingKey", `{"a":1}`, Path{"b"}, errors.ErrCodeKeyNotFound},
		{"OutOfRange", `[1]`, Path{"5"}, errors.ErrCodeIndexOutOfRange},
		{"BadIndex", `[1]`, Path{"x"}, errors.ErrCodeInvalidPath},
		{"PrimitiveParent", `{"a":1}`, Path{"a", "b"}, errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.doc)
			before := jsontree.Compact(root)
			if err := Delete(root, tt.path); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want code %s", err, tt.wantErr)
			}
			if got := jsontree.Compact(root); got != before {
				t.Error("failed delete modified the tree")
			}
		})
	}
}

func TestAdd(t *testing.T) {
	t.Run("ObjectProperty", func(t *testing.T) {
		root := mustParse(t, `{"a":1}`)
		if err := Add(root, Root, "b", "2"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if got := jsontree.Compact(root); got != `{"a":1,"b":2}` {
			t.Errorf("after add: %s", got)
		}
	})

	t.Run("ObjectOverwrite", func(t *testing.T) {
		root := mustParse(t, `{"a":1,"b":2}`)
		if err := Add(root, Root, "a", `"new"`); err != nil {
			t.Fatalf("Add: %v", err)
		}
		// Overwritten key keeps its position.
		if got := jsontree.Compact(root); got != `{"a":"new","b":2}` {
			t.Errorf("after overwrite: %s", got)
		}
	})

	t.Run("ArrayAppendIgnoresKey", func(t *testing.T) {
		root := mustParse(t, `{"items":[1]}`)
		if err := Add(root, Path{"items"}, "ignored", "true"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if got := jsontree.Compact(root); got != `{"items":[1,true]}` {
			t.Errorf("after append: %s", got)
		}
	})

	t.Run("EmptyObjectKey", func(t *testing.T) {
		root := mustParse(t, `{}`)
		if err := Add(root, Root, "", "1"); !errors.Is(err, errors.ErrCodeEmptyKey) {
			t.Fatalf("err = %v, want EMPTY_KEY", err)
		}
	})

	t.Run("PrimitiveContainer", func(t *testing.T) {
		root := mustParse(t, `{"a":1}`)
		if err := Add(root, Path{"a"}, "k", "1"); !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("err = %v, want UNSUPPORTED", err)
		}
	})
}

func TestRename(t *testing.T) {
	t.Run("MovesToEnd", func(t *testing.T) {
		root := mustParse(t, `{"a":1,"b":2,"c":3}`)
		if err := Rename(root, Root, "a", "z"); err != nil {
			t.Fatalf("Rename: %v", err)
		}
		if got := jsontree.Compact(root); got != `{"b":2,"c":3,"z":1}` {
			t.Errorf("after rename: %s", got)
		}
	})

	t.Run("SameKeyNoop", func(t *testing.T) {
		root := mustParse(t, `{"a":1,"b":2}`)
		if err := Rename(root, Root, "a", "a"); err != nil {
			t.Fatalf("Rename: %v", err)
		}
		if got := jsontree.Compact(root); got != `{"a":1,"b":2}` {
			t.Errorf("after same-key rename: %s", got)
		}
	})

	t.Run("Conflict", func(t *testing.T) {
		root := mustParse(t, `{"a":1,"b":2}`)
		before := jsontree.Compact(root)
		if err := Rename(root, Root, "a", "b"); !errors.Is(err, errors.ErrCodeKeyConflict) {
			t.Fatalf("err = %v, want KEY_CONFLICT", err)
		}
		if got := jsontree.Compact(root); got != before {
			t.Error("failed rename modified the tree")
		}
	})

	t.Run("MissingOldKey", func(t *testing.T) {
		root := mustParse(t, `{"a":1}`)
		if err := Rename(root, Root, "x", "y"); !errors.Is(err, errors.ErrCodeKeyNotFound) {
			t.Fatalf("err = %v, want KEY_NOT_FOUND", err)
		}
	})

	t.Run("NonObject", func(t *testing.T) {
		root := mustParse(t, `[1,2]`)
		if err := Rename(root, Root, "0", "1"); !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("err = %v, want UNSUPPORTED", err)
		}
	})
}

func TestPathHelpers(t *testing.T) {
	p := Parse("items.0.name")
	if !p.Equal(Path{"items", "0", "name"}) {
		t.Errorf("Parse = %v", p)
	}
	if got := p.String(); got != "items.0.name" {
		t.Errorf("String = %q", got)
	}
	if got := Root.String(); got != "$" {
		t.Errorf("root String = %q", got)
	}

	parent, last, ok := p.Parent()
	if !ok || last != "name" || !parent.Equal(Path{"items", "0"}) {
		t.Errorf("Parent = %v, %q, %v", parent, last, ok)
	}
	if _, _, ok := Root.Parent(); ok {
		t.Error("root should have no parent")
	}

	if got := Path([]string{"a", "b", "c"}).CommonPrefixLen(Path{"a", "b", "x"}); got != 2 {
		t.Errorf("CommonPrefixLen = %d, want 2", got)
	}

	// Child must not alias the receiver's backing array.
	base := Path{"a"}
	c1 := base.Child("b")
	c2 := base.Child("c")
	if !c1.Equal(Path{"a", "b"}) || !c2.Equal(Path{"a", "c"}) {
		t.Errorf("Child aliasing: %v, %v", c1, c2)
	}
}
