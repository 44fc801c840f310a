// Package cli implements the graphport command-line interface.
//
// The CLI converts graph documents (JSON or TOML) to GraphML, DOT, or
// SVG. It is built using cobra with structured logging via the
// charmbracelet/log library; all commands support --verbose (-v) for
// debug-level output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/buildinfo"
)

// appName is the application name used for the binary and display.
const appName = "graphport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms".
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphport converts graph documents to exchange formats",
		Long:         `Graphport is a CLI tool for converting graph documents (JSON or TOML) into GraphML, Graphviz DOT, or rendered SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.AddCommand(c.exportCommand())

	return root
}
