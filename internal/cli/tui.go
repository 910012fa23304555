package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mcelhennyi/boulangerie-milon/pkg/plan"
	"github.com/mcelhennyi/boulangerie-milon/pkg/render"
	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for interactive kitchen inspection.
func (c *CLI) tuiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui <kitchen.toml>",
		Short: "Inspect a planned kitchen interactively",
		Long: `Inspect a planned kitchen interactively.

The kitchen is built and its items placed, then presented as a navigable
tree. Selecting a spatial container shows its occupancy grid alongside the
tree, and placed items can be removed with 'd'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), args[0])
		},
	}
	return cmd
}

func (c *CLI) runTUI(ctx context.Context, path string) error {
	result, err := c.newRunner().Execute(ctx, plan.Options{ManifestPath: path})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	model := newKitchenModel(result)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// =============================================================================
// KitchenModel - Interactive kitchen tree inspection
// =============================================================================

// treeRow is one visible line of the flattened kitchen tree.
type treeRow struct {
	res    resource.Resource
	parent resource.Resource
	name   string
	depth  int
}

// KitchenModel is the bubbletea model for kitchen inspection.
type KitchenModel struct {
	Title  string
	Root   resource.Resource
	NameOf func(resource.Resource) string
	Rows   []treeRow
	Cursor int
	Height int
	Offset int
}

// newKitchenModel flattens the planned kitchen into navigable rows.
func newKitchenModel(result *plan.Result) KitchenModel {
	m := KitchenModel{
		Title:  result.Kitchen.Name,
		Root:   result.Kitchen.Root,
		NameOf: result.Kitchen.NameOf,
		Height: 15,
	}
	m.Rows = m.flatten(result.Kitchen.Root, nil, 0, nil)
	return m
}

func (m KitchenModel) flatten(r, parent resource.Resource, depth int, rows []treeRow) []treeRow {
	name := m.NameOf(r)
	if it, ok := r.(*resource.Item); ok {
		name = it.Name()
	}
	rows = append(rows, treeRow{res: r, parent: parent, name: name, depth: depth})
	for _, child := range r.Children() {
		rows = m.flatten(child, r, depth+1, rows)
	}
	return rows
}

// removeSelected detaches the item under the cursor from its parent and
// reflattens the tree. Containers and the root are left alone.
func (m KitchenModel) removeSelected() KitchenModel {
	row := m.Rows[m.Cursor]
	if row.parent == nil || row.res.Type() != resource.TypeItem {
		return m
	}
	if !row.parent.RemoveChild(row.res) {
		return m
	}
	m.Rows = m.flatten(m.Root, nil, 0, nil)
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
	return m
}

func (m KitchenModel) Init() tea.Cmd {
	return nil
}

func (m KitchenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "d", "x":
			return m.removeSelected(), nil
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m KitchenModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Kitchen: " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  d remove item  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.Rows[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		label := row.res.Description()
		if row.name != "" {
			label = fmt.Sprintf("[%s] %s", row.name, label)
		}
		b.WriteString(cursor + strings.Repeat("  ", row.depth) + style.Render(label))
		b.WriteString("\n")
	}

	if sp, ok := m.Rows[m.Cursor].res.(*resource.SpatialResource); ok {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(render.GridView(sp)))
	}

	return b.String()
}
