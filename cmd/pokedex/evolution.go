// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pokedex/internal/evolution"
	"github.com/pdiddy/pokedex/internal/render"
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution <name>",
	Short: "Print the evolution line of an entry",
	Long: `Evolution resolves the evolution chain of an entry and prints it as a single
line, following the first successor at every stage. Entries without a chain
print nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stages, err := evolution.NewResolver(newClient(cfg), logger).Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if line := render.EvolutionLine(stages); line != "" {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evolutionCmd)
}
