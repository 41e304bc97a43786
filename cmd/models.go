package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"plx/internal/models"
	"plx/internal/ui"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the known Sonar models",
	Long: `List the Perplexity models this tool knows about, with their
context limits. The table is advisory for display; the -m flag only
accepts identifiers listed here.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(_ *cobra.Command, _ []string) error {
	registry := models.GetGlobalRegistry()
	theme := ui.GetTheme()
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	ids := registry.IDs()
	for i, id := range ids {
		info, _ := registry.Lookup(id)

		branch := "├── "
		if i == len(ids)-1 {
			branch = "└── "
		}

		name := id
		if id == models.Default {
			name += " (default)"
		}
		fmt.Printf("%s%s\n", branch, name)

		childPrefix := "│   "
		if i == len(ids)-1 {
			childPrefix = "    "
		}
		detail := fmt.Sprintf("%s — %dk context", info.Description, info.Limit.Context/1000)
		fmt.Printf("%s%s\n", childPrefix, muted.Render(detail))
	}

	return nil
}
