package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsoncanvas/jsoncanvas/pkg/editor"
	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsonpath"
)

// newEditCmd creates the edit command for path-addressed mutations.
func newEditCmd(configPath *string) *cobra.Command {
	var (
		sets    []string
		adds    []string
		renames []string
		deletes []string
		write   bool
	)

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Apply path-addressed edits to a JSON document",
		Long: `Apply one or more edits to a JSON document. Paths use dot notation
("items.0.name"); the empty segment list is the root.

Operations are applied in flag groups: --set, then --add, then --rename,
then --delete. Each edit is atomic; the first failure stops the command and
leaves the file untouched. The result is pretty-printed to stdout unless
--write replaces the file in place.

Examples:
  jsoncanvas edit doc.json --set user.name='"Bob"'
  jsoncanvas edit doc.json --add items='42'
  jsoncanvas edit doc.json --add user:email='"b@example.com"'
  jsoncanvas edit doc.json --rename user:name=fullName
  jsoncanvas edit doc.json --delete items.0 --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			session := editor.NewSession(cfg)
			if err := session.Load(ctx, string(data)); err != nil {
				printError("%s: %s", path, errors.UserMessage(err))
				return err
			}

			applied, err := applyEditFlags(ctx, session, sets, adds, renames, deletes)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			if applied == 0 {
				printWarning("no edits given")
				return nil
			}

			out := session.Text() + "\n"
			if write {
				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printSuccess("Applied %d edit(s) to %s", applied, path)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "replace a value: path=raw")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "append to a container: path=raw or path:key=raw")
	cmd.Flags().StringArrayVar(&renames, "rename", nil, "rename an object key: path:old=new")
	cmd.Flags().StringArrayVar(&deletes, "delete", nil, "delete the value at path")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")

	return cmd
}

// applyEditFlags applies the parsed flag groups against the session and
// returns how many edits were applied.
func applyEditFlags(ctx context.Context, session *editor.Session, sets, adds, renames, deletes []string) (int, error) {
	applied := 0

	for _, spec := range sets {
		path, raw, err := splitAssign(spec)
		if err != nil {
			return applied, err
		}
		if err := session.ApplyEdit(ctx, path, editor.Update{Raw: raw}); err != nil {
			return applied, err
		}
		applied++
	}

	for _, spec := range adds {
		target, assign, err := splitAddSpec(spec)
		if err != nil {
			return applied, err
		}
		if err := session.ApplyEdit(ctx, target.path, editor.Add{Key: target.key, Raw: assign}); err != nil {
			return applied, err
		}
		applied++
	}

	for _, spec := range renames {
		target, newKey, err := splitRenameSpec(spec)
		if err != nil {
			return applied, err
		}
		op := editor.Rename{OldKey: target.key, NewKey: newKey}
		if err := session.ApplyEdit(ctx, target.path, op); err != nil {
			return applied, err
		}
		applied++
	}

	for _, spec := range deletes {
		if err := session.ApplyEdit(ctx, jsonpath.Parse(spec), editor.Delete{}); err != nil {
			return applied, err
		}
		applied++
	}

	return applied, nil
}

// keyedTarget is a container path plus an optional key, parsed from
// "path:key" flag targets.
type keyedTarget struct {
	path jsonpath.Path
	key  string
}

// splitAssign splits "path=raw" at the first equals sign.
func splitAssign(spec string) (jsonpath.Path, string, error) {
	path, raw, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "expected path=value, got %q", spec)
	}
	return jsonpath.Parse(path), raw, nil
}

// splitAddSpec splits "path:key=raw" or "path=raw" (array append, no key).
func splitAddSpec(spec string) (keyedTarget, string, error) {
	lhs, raw, ok := strings.Cut(spec, "=")
	if !ok {
		return keyedTarget{}, "", errors.New(errors.ErrCodeInvalidInput, "expected path=value or path:key=value, got %q", spec)
	}
	path, key, _ := strings.Cut(lhs, ":")
	return keyedTarget{path: jsonpath.Parse(path), key: key}, raw, nil
}

// splitRenameSpec splits "path:old=new". The path part may be empty to
// target the root object.
func splitRenameSpec(spec string) (keyedTarget, string, error) {
	lhs, newKey, ok := strings.Cut(spec, "=")
	if !ok {
		return keyedTarget{}, "", errors.New(errors.ErrCodeInvalidInput, "expected path:old=new, got %q", spec)
	}
	path, oldKey, ok := strings.Cut(lhs, ":")
	if !ok || oldKey == "" {
		return keyedTarget{}, "", errors.New(errors.ErrCodeInvalidInput, "expected path:old=new, got %q", spec)
	}
	return keyedTarget{path: jsonpath.Parse(path), key: oldKey}, newKey, nil
}
