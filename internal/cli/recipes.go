package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/stitchery/stitchery/pkg/recipe"
)

// recipesCommand creates the recipes command for listing the registry.
func (c *CLI) recipesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List the available pattern recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRecipeTable(recipe.All())
			return nil
		},
	}
}

// printRecipeTable renders the registry as a bordered table, one row per
// recipe with its craft and supported representations.
func printRecipeTable(recipes []recipe.Recipe) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{r.Name, string(r.Craft), recipeOutputs(r), r.Summary})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Recipe", "Craft", "Outputs", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t.Render())
	printNextStep("Generate one", "stitchery generate <recipe>")
}

// recipeOutputs describes which representations a recipe offers.
func recipeOutputs(r recipe.Recipe) string {
	var outputs []string
	if r.HasGrid() {
		outputs = append(outputs, "grid")
	}
	if r.HasChart() {
		outputs = append(outputs, "chart")
	}
	return strings.Join(outputs, ", ")
}
