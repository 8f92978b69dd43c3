package jsonpath

import (
	"strconv"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

// Navigate walks path from root and returns the addressed value.
//
// For an object segment the key must be present; for an array segment the
// segment must parse as a non-negative integer within bounds. Descending
// into a primitive fails. Resolution never returns a partial result.
func Navigate(root *jsontree.Value, path Path) (*jsontree.Value, error) {
	current := root
	for i, segment := range path {
		switch current.Kind() {
		case jsontree.KindObject:
			next, ok := current.Get(segment)
			if !ok {
				return nil, errors.New(errors.ErrCodeKeyNotFound, "property %q not found at %s", segment, Path(path[:i]))
			}
			current = next
		case jsontree.KindArray:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 {
				return nil, errors.New(errors.ErrCodeInvalidPath, "segment %q is not an array index", segment)
			}
			elems := current.Array()
			if idx >= len(elems) {
				return nil, errors.New(errors.ErrCodeIndexOutOfRange, "index %d out of range at %s (length %d)", idx, Path(path[:i]), len(elems))
			}
			current = elems[idx]
		default:
			return nil, errors.New(errors.ErrCodePathNotFound, "cannot descend into %s value at %s", current.Kind(), Path(path[:i]))
		}
	}
	return current, nil
}

// Update replaces the value at path with newValue, in place.
// The tree is unmodified if the path does not resolve.
func Update(root *jsontree.Value, path Path, newValue *jsontree.Value) error {
	target, err := Navigate(root, path)
	if err != nil {
		return err
	}
	target.Replace(newValue)
	return nil
}

// Delete removes the value at path from its parent container.
//
// The path must be non-empty; the root cannot be deleted. Object members are
// removed by key, array elements by index with later elements shifting down.
func Delete(root *jsontree.Value, path Path) error {
	parentPath, last, ok := path.Parent()
	if !ok {
		return errors.New(errors.ErrCodeInvalidPath, "the document root cannot be deleted")
	}

	parent, err := Navigate(root, parentPath)
	if err != nil {
		return err
	}

	switch parent.Kind() {
	case jsontree.KindObject:
		if _, present := parent.Object().Delete(last); !present {
			return errors.New(errors.ErrCodeKeyNotFound, "property %q not found at %s", last, parentPath)
		}
		return nil
	case jsontree.KindArray:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 {
			return errors.New(errors.ErrCodeInvalidPath, "segment %q is not an array index", last)
		}
		if !parent.RemoveIndex(idx) {
			return errors.New(errors.ErrCodeIndexOutOfRange, "index %d out of range at %s (length %d)", idx, parentPath, parent.Len())
		}
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "cannot delete from %s value at %s", parent.Kind(), parentPath)
}

// Add appends a coerced value into the container addressed by path.
//
// Note that path addresses the container itself, not the new child. For an
// object container, key must be non-empty and is inserted or overwritten.
// For an array container, key is ignored and the value is appended.
func Add(root *jsontree.Value, path Path, key, rawValue string) error {
	container, err := Navigate(root, path)
	if err != nil {
		return err
	}

	switch container.Kind() {
	case jsontree.KindObject:
		if key == "" {
			return errors.New(errors.ErrCodeEmptyKey, "property name cannot be empty")
		}
		container.Set(key, jsontree.ParseEdited(rawValue))
		return nil
	case jsontree.KindArray:
		container.Append(jsontree.ParseEdited(rawValue))
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "cannot add into %s value at %s", container.Kind(), path)
}

// Rename changes a property key on the object addressed by path.
//
// Renaming fails if oldKey is absent, or if newKey already exists and
// differs from oldKey (no implicit overwrite). On success the member is
// removed and reinserted, which moves it to the end of the object; this is
// documented behavior, not an invariant the engine hides.
func Rename(root *jsontree.Value, path Path, oldKey, newKey string) error {
	target, err := Navigate(root, path)
	if err != nil {
		return err
	}
	if target.Kind() != jsontree.KindObject {
		return errors.New(errors.ErrCodeUnsupported, "cannot rename key on %s value at %s", target.Kind(), path)
	}

	obj := target.Object()
	if _, ok := obj.Get(oldKey); !ok {
		return errors.New(errors.ErrCodeKeyNotFound, "property %q not found at %s", oldKey, path)
	}
	if oldKey == newKey {
		return nil
	}
	if _, exists := obj.Get(newKey); exists {
		return errors.New(errors.ErrCodeKeyConflict, "property %q already exists at %s", newKey, path)
	}

	val, _ := obj.Delete(oldKey)
	obj.Set(newKey, val)
	return nil
}
