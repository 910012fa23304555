// Package cli implements the boulangerie command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mcelhennyi/boulangerie-milon/pkg/buildinfo"
	"github.com/mcelhennyi/boulangerie-milon/pkg/plan"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "boulangerie"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Boulangerie plans bakery resource allocation",
		Long:         `Boulangerie is a CLI tool for planning how baked goods fill a kitchen: ovens hold racks, racks hold sheets, and sheets hold cookies, with 2D best-fit placement on occupancy grids.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.planCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.vizCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a planning runner for CLI use.
func (c *CLI) newRunner() *plan.Runner {
	return plan.NewRunner(c.Logger)
}
