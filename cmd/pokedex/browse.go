// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/pokedex/internal/browse"
	"github.com/pdiddy/pokedex/internal/catalog"
	"github.com/pdiddy/pokedex/internal/listing"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Browse opens a terminal view of the listing. Press m to load the next batch,
/ to search by name or number, esc to return to the list, and q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// The terminal belongs to the view; fetch warnings would tear it.
		quiet := zap.NewNop()
		s, err := listing.Open(cmd.Context(), catalog.NewClient(cfg.Catalog, quiet), cfg.Listing, quiet)
		if err != nil {
			return err
		}

		p := tea.NewProgram(browse.New(cmd.Context(), s), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
