package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gf-b1-bridge/go/internal/bridge"
	"github.com/gf-b1-bridge/go/internal/server"
)

var submitCmd = &cobra.Command{
	Use:   "submit <entry.json>",
	Short: "Run one submission file through the pipeline",
	Long: `Reads a JSON file with the same shape as the webhook payload
({"form_id": ..., "entry": {...}, "form": {...}}) and processes it exactly as
an inbound submission would be.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read entry file: %w", err)
		}
		var req server.SubmissionRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("failed to parse entry file: %w", err)
		}
		if req.FormID == "" {
			req.FormID = req.Form.ID
		}

		res := bridge.NewProcessor(cfg, log).ProcessSubmission(cmd.Context(), req.FormID, req.Entry, req.Form)
		fmt.Printf("state: %s\n%s\n", res.State, res.Message)
		if res.Err != nil {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
