// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pokedex/internal/preferences"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the preferred flavor text language",
	Long: fmt.Sprintf(`Lang prints the stored language preference, or stores a new one when a code
is given. Supported codes: %s. The default is %s.`,
		strings.Join(preferences.SupportedLanguages, ", "), preferences.DefaultLanguage),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openPreferences(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 1 {
			if err := preferences.SetLanguage(cmd.Context(), store, args[0]); err != nil {
				return err
			}
		}
		lang, err := preferences.Language(cmd.Context(), store)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), lang)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
