package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stitchery/stitchery/pkg/export"
	"github.com/stitchery/stitchery/pkg/recipe"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// previewCommand creates the preview command for interactive browsing.
func (c *CLI) previewCommand() *cobra.Command {
	var width, height, rounds int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse recipes interactively with a live preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := NewPreviewModel(recipe.All(), recipe.Params{
				Width:  width,
				Height: height,
				Rounds: rounds,
			})
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 16, "preview width in stitches")
	cmd.Flags().IntVar(&height, "height", 8, "preview height in rows")
	cmd.Flags().IntVar(&rounds, "rounds", 4, "preview round count for circular motifs")
	return cmd
}

// =============================================================================
// PreviewModel - Interactive recipe browsing
// =============================================================================

// PreviewModel is the bubbletea model for the recipe browser. The left
// column lists the registry; the right pane shows a live rendering of the
// selected recipe at the preview dimensions.
type PreviewModel struct {
	Recipes []recipe.Recipe
	Params  recipe.Params
	Cursor  int
}

// NewPreviewModel creates a preview model over the given recipes.
func NewPreviewModel(recipes []recipe.Recipe, params recipe.Params) PreviewModel {
	return PreviewModel{
		Recipes: recipes,
		Params:  params,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Recipes)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Stitchery Recipes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, r := range m.Recipes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, r.Name, listDimStyle.Render(string(r.Craft)))
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	selected := m.Recipes[m.Cursor]
	pane := previewPaneStyle.Render(m.renderPreview(selected))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", pane))

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(selected.Summary))
	b.WriteString("\n")

	return b.String()
}

// renderPreview draws the selected recipe: the grid as ASCII art when the
// recipe has one, otherwise the first rows of the written chart.
func (m PreviewModel) renderPreview(r recipe.Recipe) string {
	if r.HasGrid() {
		p, err := r.GridPattern(m.Params)
		if err != nil {
			return StyleWarning.Render(err.Error())
		}
		return export.ASCII(p.Grid)
	}

	p, err := r.ChartPattern(m.Params)
	if err != nil {
		return StyleWarning.Render(err.Error())
	}
	lines := strings.Split(strings.TrimRight(export.Text(p), "\n"), "\n")
	if len(lines) > 12 {
		lines = append(lines[:12], listDimStyle.Render("…"))
	}
	return strings.Join(lines, "\n")
}
