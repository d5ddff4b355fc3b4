package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/perch-docs/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card catalog file",
	Long: `Validate checks that every card in a catalog file has a title, an absolute link,
a description and an icon. Without a path the active catalog is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			source  string
			results validator.ValidationResults
		)

		if len(args) == 1 {
			source = args[0]
			v := validator.NewValidator(source)
			var err error
			results, err = v.Validate()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}
		} else {
			cards, src, err := activeCards(cmd)
			if err != nil {
				return err
			}
			source = src
			results = validator.ValidateCards(cards)
		}

		printResults(cmd.OutOrStdout(), source, results)
		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

// printResults displays validation errors and warnings
func printResults(w io.Writer, source string, results validator.ValidationResults) {
	fmt.Fprintln(w, "Validation Results:")
	fmt.Fprintln(w, "-------------------")

	if len(results.Errors) == 0 {
		fmt.Fprintf(w, "%s Catalog '%s' is valid.\n", colorize.GreenString("✅"), source)
	} else {
		fmt.Fprintf(w, "%s Catalog '%s' has %d validation errors:\n",
			colorize.RedString("❌"), source, len(results.Errors))
		for i, err := range results.Errors {
			fmt.Fprintf(w, "%d. %s\n", i+1, err)
		}
	}

	if len(results.Warnings) > 0 {
		fmt.Fprintln(w, colorize.YellowString("\nWarnings:"))
		for i, warn := range results.Warnings {
			fmt.Fprintf(w, "%d. %s\n", i+1, warn)
		}
	}
}
