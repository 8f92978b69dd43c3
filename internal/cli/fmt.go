package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/jsontree"
)

// newFmtCmd creates the fmt command for reformatting JSON documents.
func newFmtCmd() *cobra.Command {
	var (
		compact bool
		write   bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Pretty-print or compact a JSON document",
		Long: `Reformat a JSON document with the canonical 2-space pretty-print, or
with --compact as a single line without insignificant whitespace. Key order
is preserved. The result goes to stdout unless --write replaces the file in
place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			v, err := jsontree.Parse(string(data))
			if err != nil {
				printError("%s: %s", path, errors.UserMessage(err))
				return err
			}

			out := jsontree.Pretty(v)
			if compact {
				out = jsontree.Compact(v)
			} else {
				out += "\n"
			}

			if write {
				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				logger.Debug("Rewrote document", "path", path, "bytes", len(out))
				printSuccess("Formatted %s", path)
				return nil
			}

			fmt.Print(out)
			if compact {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact form instead of pretty-printing")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")

	return cmd
}
