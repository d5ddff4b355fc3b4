package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/perch-docs/internal/card"
	"github.com/arcanaland/perch-docs/internal/catalog"
	"github.com/arcanaland/perch-docs/internal/config"
	"github.com/arcanaland/perch-docs/internal/validator"
)

// cardsCmd represents the cards command group
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Inspect the lead-management portal cards",
	Long: `Commands for inspecting the navigation cards of the lead-management portal.
The built-in catalog is used unless a catalog file was selected with 'perch-docs cards use'.`,
}

// cardsListCmd represents the cards ls command
var cardsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, source, err := activeCards(cmd)
		if err != nil {
			return err
		}

		if len(cards) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cards found in", source)
			return nil
		}

		displayCards(cmd.OutOrStdout(), cards, terminalWidth())
		return nil
	},
}

// cardsExportCmd represents the cards export command
var cardsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the active catalog as TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, _, err := activeCards(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return catalog.Encode(cmd.OutOrStdout(), cards)
		}

		file, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("error creating %s: %w", args[0], err)
		}
		defer file.Close()

		if err := catalog.Encode(file, cards); err != nil {
			return fmt.Errorf("error writing catalog: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cards to %s\n", len(cards), args[0])
		return nil
	},
}

// cardsUseCmd represents the cards use command
var cardsUseCmd = &cobra.Command{
	Use:   "use [catalog_file]",
	Short: "Use a catalog file instead of the built-in catalog",
	Long: `Use records a catalog file in the config so that every other command reads it
instead of the built-in catalog. Pass --builtin to go back to the built-in catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		builtin, _ := cmd.Flags().GetBool("builtin")
		if builtin {
			if err := config.SetCatalogPath(""); err != nil {
				return fmt.Errorf("error updating config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Using the built-in catalog")
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("a catalog file is required unless --builtin is set")
		}

		// Refuse files that would break the portal
		results, err := validator.NewValidator(args[0]).Validate()
		if err != nil {
			return err
		}
		if len(results.Errors) > 0 {
			printResults(cmd.OutOrStdout(), args[0], results)
			return fmt.Errorf("not using %s: validation failed", args[0])
		}

		if err := config.SetCatalogPath(args[0]); err != nil {
			return fmt.Errorf("error updating config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Catalog set to: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardsCmd)
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsExportCmd)
	cardsCmd.AddCommand(cardsUseCmd)

	cardsUseCmd.Flags().Bool("builtin", false, "Go back to the built-in catalog")
}

// activeCards returns the configured catalog and a description of where it came from
func activeCards(cmd *cobra.Command) ([]card.Card, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	source := "built-in catalog"
	if cfg.CatalogPath != "" {
		source = cfg.CatalogPath
	}

	cards, err := catalog.Active(cfg.CatalogPath)
	if err != nil {
		return nil, "", err
	}

	log.Debug().Str("source", source).Int("cards", len(cards)).Msg("loaded catalog")
	return cards, source, nil
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// getIconSymbol returns a Nerd Font glyph for the icon name
func getIconSymbol(icon string) string {
	switch icon {
	case "building":
		return "\uf1ad"
	case "user":
		return "\uf007"
	default:
		return "•"
	}
}

// displayCards prints each card with its link and wrapped description
func displayCards(w io.Writer, cards []card.Card, width int) {
	indent := "    "
	descWidth := width - len(indent) - 2
	if descWidth < 20 {
		descWidth = 20
	}

	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s %s\n",
			colorize.CyanString("%d.", i+1),
			getIconSymbol(c.Icon),
			colorize.HiWhiteString("%s", c.Title))
		fmt.Fprintln(w, indent+colorize.BlueString("%s", c.Href))
		for _, line := range wrapText(c.Description, descWidth) {
			fmt.Fprintln(w, indent+line)
		}
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
