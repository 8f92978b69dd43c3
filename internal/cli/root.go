// Package cli implements the jsoncanvas command-line interface.
//
// This package provides commands for formatting JSON documents, exporting
// their structural graphs, applying path-addressed edits, and opening the
// interactive two-pane editor. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - fmt: Pretty-print or compact a JSON document
//   - graph: Export the layout graph as JSON, DOT, or SVG
//   - edit: Apply update/delete/add/rename operations by path
//   - tui: Open the interactive editor
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jsoncanvas/jsoncanvas/pkg/editor"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the jsoncanvas CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "jsoncanvas",
		Short:        "jsoncanvas edits JSON documents as node graphs",
		Long:         `jsoncanvas is a JSON editor that keeps a text view and a structural graph view of the same document in sync, with path-addressed edits, bounded undo, and graph export.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("jsoncanvas %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newFmtCmd())
	root.AddCommand(newGraphCmd(&configPath))
	root.AddCommand(newEditCmd(&configPath))
	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig resolves the session configuration for a command: the file
// behind --config when given, defaults otherwise.
func loadConfig(configPath *string) (editor.Config, error) {
	if configPath == nil || *configPath == "" {
		return editor.DefaultConfig(), nil
	}
	return editor.LoadConfig(*configPath)
}
