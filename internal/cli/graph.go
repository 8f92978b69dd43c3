package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsoncanvas/jsoncanvas/pkg/editor"
	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/export"
)

// Output formats for the graph command.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// newGraphCmd creates the graph command for exporting layout graphs.
func newGraphCmd(configPath *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Export a document's structural graph",
		Long: `Build the layout graph for a JSON document and export it. The json
format carries node positions, sizes, paths, and inline rows; dot emits
Graphviz source; svg renders the diagram in-process.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
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

			prog := newProgress(logger)
			session.RebuildGraph(ctx)
			g := session.Graph()
			prog.done(fmt.Sprintf("Built graph for %s", path))
			printStats(len(g.Nodes), len(g.Edges))

			var out []byte
			switch format {
			case formatJSON:
				if output != "" {
					if err := export.ExportJSON(g, output); err != nil {
						return err
					}
					printFile(output)
					return nil
				}
				return export.WriteJSON(g, os.Stdout)
			case formatDOT:
				out = []byte(export.ToDOT(g))
			case formatSVG:
				out, err = export.RenderSVG(export.ToDOT(g))
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want json, dot, or svg)", format)
			}

			if output == "" {
				_, err = os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, dot, or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}
