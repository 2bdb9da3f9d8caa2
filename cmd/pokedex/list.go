// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pokedex/internal/listing"
	"github.com/pdiddy/pokedex/internal/render"
	"github.com/pdiddy/pokedex/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries batch by batch",
	Long: `List fetches the full index once and then loads entry details in fixed-size
batches (listing.batch_size, default 50). By default one batch is shown; use
--batches to load more or --all to load the whole index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		batches, _ := cmd.Flags().GetInt("batches")
		all, _ := cmd.Flags().GetBool("all")
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		if batches < 1 && !all {
			return fmt.Errorf("--batches must be at least 1")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := listing.Open(cmd.Context(), newClient(cfg), cfg.Listing, logger)
		if err != nil {
			return err
		}

		failed := 0
		for i := 0; (all || i < batches) && !s.Done(); i++ {
			r := s.LoadNextBatch(cmd.Context())
			failed += r.Failed
			if err := cmd.Context().Err(); err != nil {
				return err
			}
		}
		return writeCards(cmd.OutOrStdout(), os.Stderr, s.Cards(), format, s, failed)
	},
}

func init() {
	listCmd.Flags().Int("batches", 1, "number of batches to load")
	listCmd.Flags().Bool("all", false, "load every batch of the index")
	addFormatFlag(listCmd)

	rootCmd.AddCommand(listCmd)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "table", "output format: table, json, or yaml")
}

func formatFlag(cmd *cobra.Command) (render.Format, error) {
	v, _ := cmd.Flags().GetString("format")
	return render.ParseFormat(v)
}

// writeCards prints cards in format and a progress summary on status.
func writeCards(out, status io.Writer, cards []types.Detail, format render.Format, s *listing.Session, failed int) error {
	if err := render.Cards(cards, format, out); err != nil {
		return err
	}
	fmt.Fprintf(status, "Loaded %d of %d entries", s.Cursor(), s.Total())
	if failed > 0 {
		fmt.Fprintf(status, " (%d failed)", failed)
	}
	fmt.Fprintln(status)
	return nil
}
