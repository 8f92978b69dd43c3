package cli

import (
	"context"
	"testing"

	"github.com/jsoncanvas/jsoncanvas/pkg/editor"
	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

func TestSplitAssign(t *testing.T) {
	tests := []struct {
		spec     string
		wantPath string
		wantRaw  string
		wantErr  bool
	}{
		{`user.name="Bob"`, "user.name", `"Bob"`, false},
		{`count=42`, "count", "42", false},
		{`flag=true`, "flag", "true", false},
		{`a=b=c`, "a", "b=c", false},
		{`nopath`, "", "", true},
	}
	for _, tt := range tests {
		path, raw, err := splitAssign(tt.spec)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitAssign(%q) err = %v, wantErr %v", tt.spec, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if path.String() != tt.wantPath || raw != tt.wantRaw {
			t.Errorf("splitAssign(%q) = %v, %q", tt.spec, path, raw)
		}
	}
}

func TestSplitAddSpec(t *testing.T) {
	tests := []struct {
		spec     string
		wantPath string
		wantKey  string
		wantRaw  string
		wantErr  bool
	}{
		{`user:email="a@b.com"`, "user", "email", `"a@b.com"`, false},
		{`items=42`, "items", "", "42", false},
		{`:top=1`, "$", "top", "1", false},
		{`missing`, "", "", "", true},
	}
	for _, tt := range tests {
		target, raw, err := splitAddSpec(tt.spec)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitAddSpec(%q) err = %v, wantErr %v", tt.spec, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if target.path.String() != tt.wantPath || target.key != tt.wantKey || raw != tt.wantRaw {
			t.Errorf("splitAddSpec(%q) = %v, %q, %q", tt.spec, target.path, target.key, raw)
		}
	}
}

func TestSplitRenameSpec(t *testing.T) {
	tests := []struct {
		spec       string
		wantPath   string
		wantOldKey string
		wantNewKey string
		wantErr    bool
	}{
		{`user:name=fullName`, "user", "name", "fullName", false},
		{`:a=b`, "$", "a", "b", false},
		{`user:name`, "", "", "", true},
		{`user=name`, "", "", "", true},
	}
	for _, tt := range tests {
		target, newKey, err := splitRenameSpec(tt.spec)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitRenameSpec(%q) err = %v, wantErr %v", tt.spec, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if target.path.String() != tt.wantPath || target.key != tt.wantOldKey || newKey != tt.wantNewKey {
			t.Errorf("splitRenameSpec(%q) = %v, %q, %q", tt.spec, target.path, target.key, newKey)
		}
	}
}

func TestApplyEditFlags(t *testing.T) {
	ctx := context.Background()
	session := editor.NewSession(editor.DefaultConfig())
	if err := session.Load(ctx, `{"user":{"name":"Alice"},"items":[1,2,3]}`); err != nil {
		t.Fatal(err)
	}

	applied, err := applyEditFlags(ctx, session,
		[]string{`user.name="Bob"`},
		[]string{`user:email="b@example.com"`, `items=4`},
		[]string{`user:email=contact`},
		[]string{`items.0`},
	)
	if err != nil {
		t.Fatalf("applyEditFlags: %v", err)
	}
	if applied != 5 {
		t.Errorf("applied = %d, want 5", applied)
	}

	want := `{"user":{"name":"Bob","contact":"b@example.com"},"items":[2,3,4]}`
	if got := jsontree.Compact(session.Value()); got != want {
		t.Errorf("result = %s, want %s", got, want)
	}
}

func TestApplyEditFlagsStopsOnFailure(t *testing.T) {
	ctx := context.Background()
	session := editor.NewSession(editor.DefaultConfig())
	if err := session.Load(ctx, `{"a":1}`); err != nil {
		t.Fatal(err)
	}

	applied, err := applyEditFlags(ctx, session,
		[]string{`a=2`, `missing.deep=3`, `a=4`},
		nil, nil, nil,
	)
	if err == nil {
		t.Fatal("expected failure for unresolvable path")
	}
	if !errors.Is(err, errors.ErrCodeKeyNotFound) {
		t.Errorf("error code = %v", errors.GetCode(err))
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 before the failure", applied)
	}
	// The first edit landed; the failing one did not.
	if got := jsontree.Compact(session.Value()); got != `{"a":2}` {
		t.Errorf("result = %s", got)
	}
}
