package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gf-b1-bridge/go/internal/secrets"
)

var encryptPasswordCmd = &cobra.Command{
	Use:   "encrypt-password",
	Short: "Encrypt a Service Layer password for the settings store",
	Long: `Reads a password from stdin and prints the enc:v1: envelope to put in
sap_password. The encryption_secret setting must match at runtime.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.EncryptionSecret == "" {
			return fmt.Errorf("encryption_secret is not configured")
		}

		reader := bufio.NewReader(os.Stdin)
		plaintext, err := reader.ReadString('\n')
		if err != nil && plaintext == "" {
			return fmt.Errorf("failed to read password from stdin: %w", err)
		}
		plaintext = strings.TrimRight(plaintext, "\r\n")

		sealed, err := secrets.Encrypt(plaintext, cfg.EncryptionSecret)
		if err != nil {
			return err
		}
		fmt.Println(sealed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encryptPasswordCmd)
}
