package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gf-b1-bridge/go/internal/bridge"
	"github.com/gf-b1-bridge/go/internal/itemcache"
	"github.com/gf-b1-bridge/go/internal/server"
)

var flagListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		addr := cfg.ListenAddr
		if flagListenAddr != "" {
			addr = flagListenAddr
		}

		var items *itemcache.Store
		if cfg.ItemCacheDir != "" {
			items, err = itemcache.Open(cfg.ItemCacheDir)
			if err != nil {
				return err
			}
			defer items.Close()
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		processor := bridge.NewProcessor(cfg, log)
		return server.New(processor, items, log).ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListenAddr, "listen", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
