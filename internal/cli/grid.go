package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcelhennyi/boulangerie-milon/pkg/errors"
	"github.com/mcelhennyi/boulangerie-milon/pkg/manifest"
	"github.com/mcelhennyi/boulangerie-milon/pkg/plan"
	"github.com/mcelhennyi/boulangerie-milon/pkg/render"
	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// gridCommand creates the grid command for inspecting occupancy grids.
func (c *CLI) gridCommand() *cobra.Command {
	var skipItems bool

	cmd := &cobra.Command{
		Use:   "grid <kitchen.toml> <resource>",
		Short: "Show the occupancy grid of a spatial container",
		Long: `Show the occupancy grid of a spatial container.

The kitchen is built and its items placed first, so the grid reflects the
planned state. Occupied cells render as '#', free cells as '.'. One text
line corresponds to one grid row along the length axis.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(cmd.Context(), args[0], args[1], skipItems)
		},
	}

	cmd.Flags().BoolVar(&skipItems, "empty", false, "show the grid before any items are placed")

	return cmd
}

func (c *CLI) runGrid(ctx context.Context, path, name string, skipItems bool) error {
	runner := c.newRunner()
	result, err := runner.Execute(ctx, plan.Options{ManifestPath: path})
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	kitchen := result.Kitchen

	if skipItems {
		// Rebuild without placing to show the pristine grid.
		m, err := manifest.Load(path)
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
		kitchen, err = m.Build()
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
	}

	res, ok := kitchen.Lookup(name)
	if !ok {
		return errors.New(errors.ErrCodeResourceNotFound, "no resource %q in %s", name, path)
	}
	sp, ok := res.(*resource.SpatialResource)
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "resource %q has no occupancy grid", name)
	}

	g := sp.GridSnapshot()
	printInfo("%s: %dx%d cells, %d occupied", name, g.Rows(), g.Cols(), g.Occupied())
	fmt.Print(render.GridView(sp))
	return nil
}
