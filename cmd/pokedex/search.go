// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pokedex/internal/listing"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the index by name or number",
	Long: `Search scans the full index for entries whose name contains the query, or
whose number contains it, ignoring case and surrounding spaces. Every match is
fetched and shown. An empty query matches the whole index.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := listing.Open(cmd.Context(), newClient(cfg), cfg.Listing, logger)
		if err != nil {
			return err
		}

		r := s.Search(cmd.Context(), args[0])
		return writeCards(cmd.OutOrStdout(), os.Stderr, s.Cards(), format, s, r.Failed)
	},
}

func init() {
	addFormatFlag(searchCmd)

	rootCmd.AddCommand(searchCmd)
}
