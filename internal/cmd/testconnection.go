package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gf-b1-bridge/go/internal/bridge"
)

var testConnectionCmd = &cobra.Command{
	Use:   "test-connection",
	Short: "Attempt a Service Layer login/logout round trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.HasCredentials() {
			return fmt.Errorf("connection settings are incomplete: endpoint, company db and username are required")
		}

		sl, err := bridge.NewProcessor(cfg, log).NewClient(log)
		if err != nil {
			return err
		}

		result := sl.TestConnection(cmd.Context())
		if !result.Success {
			fmt.Printf("FAILED: %s\n", result.Message)
			return nil
		}
		fmt.Printf("OK: %s\n", result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testConnectionCmd)
}
