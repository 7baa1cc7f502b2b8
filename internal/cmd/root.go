// Package cmd wires the CLI: serve the webhook endpoint, run one-off
// submission and connectivity tests, and maintain the item cache.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gf-b1-bridge/go/internal/config"
)

var (
	flagConfigFile string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "gf-b1-bridge",
	Short: "Bridge Gravity Forms submissions into SAP Business One",
	Long: `gf-b1-bridge receives Gravity Forms webhook submissions and creates
SAP Business One Business Partners (and optionally Sales Quotations) through
the Service Layer REST API.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigFile, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// loadConfig reads configuration and builds the process logger.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := zerolog.InfoLevel
	if flagDebug || cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return cfg, log, nil
}
