package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanaland/perch-docs/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a local preview of the portal cards and widgets",
	Long: `Serve starts an HTTP server with a preview of the active catalog at / and of any
widget at /widgets/{widget_id}?height=...&title=... until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.ListenAddr
		}

		cards, _, err := activeCards(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(addr, cards, cfg.Renderer()).ListenAndServe(ctx)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (defaults to listen_addr from the config)")
}
