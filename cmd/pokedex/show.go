// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pokedex/internal/details"
	"github.com/pdiddy/pokedex/internal/preferences"
	"github.com/pdiddy/pokedex/internal/render"
)

// pageWidth is the word-wrap width of the rendered details page.
const pageWidth = 80

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the details page of an entry",
	Long: `Show fetches an entry, its species, and its evolution chain. The flavor text
is chosen in the preferred language (see "pokedex lang"), falling back to
Portuguese, then English. Only the first branch of an evolution chain is shown.`,
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

		lang, _ := cmd.Flags().GetString("lang")
		if lang == "" {
			store, err := openPreferences(cfg)
			if err != nil {
				return err
			}
			lang, err = preferences.Language(cmd.Context(), store)
			store.Close()
			if err != nil {
				return err
			}
		}

		page, err := details.NewLoader(newClient(cfg), logger).Load(cmd.Context(), args[0], lang)
		if err != nil {
			// Reported as "failed to load details: <cause>".
			return err
		}

		out := cmd.OutOrStdout()
		switch format {
		case render.FormatJSON:
			return render.JSON(page, out)
		case render.FormatYAML:
			return render.YAML(page, out)
		}

		md := render.Markdown(page)
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			styled, err := render.Terminal(md, pageWidth)
			if err != nil {
				return err
			}
			fmt.Fprint(out, styled)
			return nil
		}
		fmt.Fprint(out, md)
		return nil
	},
}

func init() {
	showCmd.Flags().String("lang", "", "flavor text language (default: stored preference)")
	addFormatFlag(showCmd)

	rootCmd.AddCommand(showCmd)
}
