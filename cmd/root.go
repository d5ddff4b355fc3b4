package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/arcanaland/perch-docs/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "perch-docs",
	Short: "Tool for managing the Perch docs portal catalog and widget embeds",
	Long: `perch-docs manages the navigation cards of the Perch lead-management portal
and renders the inline frames that embed Perch widgets into documentation pages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogging(cmd *cobra.Command) error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	levelName, _ := cmd.Flags().GetString("log-level")
	if levelName == "" {
		levelName = "info"
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// loadConfig loads the config file and applies its log level unless the flag
// was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log_level %q in %s: %w", cfg.LogLevel, config.GetConfigFilePath(), err)
		}
		zerolog.SetGlobalLevel(level)
	}
	return cfg, nil
}
