package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"artdistrict/cmd/artdistrict/browse"
)

var browseQuery string

// browseCmd launches the interactive catalog browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the artwork catalog interactively",
	Long: `Opens the interactive catalog browser. Filters and pagination are
driven by keys and slash commands; --filters restores a saved filter
state, e.g. --filters "category=Painting&page=2".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := browse.New(browse.Config{
			Lister:  newClient(),
			Query:   browseQuery,
			Timeout: cfg.RequestTimeout(),
		})
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseQuery, "filters", "", "initial filter query string")
}
