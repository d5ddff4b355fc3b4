package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/perch-docs/internal/widget"
)

var embedCmd = &cobra.Command{
	Use:   "embed [widget_id]",
	Short: "Print the HTML that embeds a Perch widget",
	Long: `Embed prints the inline frame markup for a Perch widget, ready to paste into a
documentation page. The widget host and origin come from the config file.

Examples:
  perch-docs embed abc123
  perch-docs embed abc123 --height 500px --title "Affordability Calculator"
  perch-docs embed abc123 --url`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		renderer := cfg.Renderer()

		urlOnly, _ := cmd.Flags().GetBool("url")
		if urlOnly {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.SourceURL(args[0]))
			return nil
		}

		height, _ := cmd.Flags().GetString("height")
		title, _ := cmd.Flags().GetString("title")

		out, err := renderer.Render(cmd.Context(), widget.Params{
			WidgetID: args[0],
			Height:   height,
			Title:    title,
		})
		if err != nil {
			return fmt.Errorf("error rendering widget: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(embedCmd)

	embedCmd.Flags().String("height", widget.DefaultHeight, "CSS height of the frame")
	embedCmd.Flags().String("title", widget.DefaultTitle, "Accessible title of the frame")
	embedCmd.Flags().Bool("url", false, "Print only the frame source URL")
}
