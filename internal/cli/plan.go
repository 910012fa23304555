package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcelhennyi/boulangerie-milon/pkg/plan"
	"github.com/mcelhennyi/boulangerie-milon/pkg/render"
)

// planCommand creates the plan command for running a placement plan.
func (c *CLI) planCommand() *cobra.Command {
	var (
		showTree bool
		showUtil bool
	)

	cmd := &cobra.Command{
		Use:   "plan <kitchen.toml>",
		Short: "Load a kitchen manifest and place its items",
		Long: `Load a kitchen manifest and place its items.

The plan command builds the container tree declared by the manifest, then
places every declared item batch into its target container. Spatial
containers use 2D best-fit search over their occupancy grid; quantity
containers fill slots in order.

Placement failures are reported per item, not as a command error, so a
partially full kitchen still yields a complete report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), args[0], showTree, showUtil)
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", true, "print the container tree after placement")
	cmd.Flags().BoolVar(&showUtil, "utilization", false, "print per-resource utilization")

	return cmd
}

// runPlan executes the plan and prints the report.
func (c *CLI) runPlan(ctx context.Context, path string, showTree, showUtil bool) error {
	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(ctx, plan.Options{ManifestPath: path})
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	prog.done(fmt.Sprintf("Planned %d items", result.Stats.Items))

	printSuccess("Kitchen %q planned", result.Kitchen.Name)
	printPlanStats(len(result.Placed), len(result.Rejected))

	for _, rej := range result.Rejected {
		printWarning("%s %s %s (%s)", rej.Item, iconArrow, rej.Into, rej.Reason)
	}

	if showTree {
		fmt.Println()
		render.Tree(os.Stdout, result.Kitchen.Root, result.Kitchen.NameOf)
	}

	if showUtil {
		fmt.Println()
		names := make([]string, 0, len(result.Utilization))
		for name := range result.Utilization {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			printDetail("%-20s %5.1f%%", name, result.Utilization[name]*100)
		}
	}

	if len(result.Rejected) == 0 {
		printNextStep("Inspect a grid", fmt.Sprintf("%s grid %s <resource>", appName, path))
	}
	return nil
}
