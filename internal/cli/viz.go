package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
	"github.com/mcelhennyi/boulangerie-milon/pkg/plan"
	"github.com/mcelhennyi/boulangerie-milon/pkg/render"
)

// Output formats supported by the viz command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// vizCommand creates the viz command for rendering kitchen diagrams.
func (c *CLI) vizCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "viz <kitchen.toml>",
		Short: "Render the planned kitchen as a Graphviz diagram",
		Long: `Render the planned kitchen as a Graphviz diagram.

The kitchen is built and its items placed first, then the containment tree
is rendered. Containers appear as solid boxes, items as dashed grey boxes,
with edges pointing from parent to child.

Formats:
  dot   Graphviz source text (default when writing to stdout)
  svg   rendered vector image`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = formatDOT
				if strings.HasSuffix(output, ".svg") {
					format = formatSVG
				}
			}
			if format != formatDOT && format != formatSVG {
				return errors.New(errors.ErrCodeUnsupported, "invalid format %q (must be dot or svg)", format)
			}
			return c.runViz(cmd.Context(), args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot (default), svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include type and utilization labels")

	return cmd
}

func (c *CLI) runViz(ctx context.Context, path, output, format string, detailed bool) error {
	result, err := c.newRunner().Execute(ctx, plan.Options{ManifestPath: path})
	if err != nil {
		return fmt.Errorf("viz: %w", err)
	}

	dot := render.ToDOT(result.Kitchen.Root, result.Kitchen.NameOf, render.DotOptions{Detailed: detailed})

	var data []byte
	switch format {
	case formatSVG:
		spinner := newSpinner(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = render.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("viz: %w", err)
		}
		spinner.Stop()
	default:
		data = []byte(dot)
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("viz: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("viz: %w", err)
	}
	printSuccess("Rendered %s diagram", format)
	printFile(output)
	return nil
}
