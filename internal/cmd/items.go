package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gf-b1-bridge/go/internal/bridge"
	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/itemcache"
)

var flagItemsTop int

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Work with the SAP item master cache",
}

var itemsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch items from the Service Layer into the local cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.ItemCacheDir == "" {
			return fmt.Errorf("item_cache_dir is not configured")
		}

		sl, err := bridge.NewProcessor(cfg, log).NewClient(log)
		if err != nil {
			return err
		}
		items, err := sl.ListItems(cmd.Context(), flagItemsTop)
		if err != nil {
			return err
		}
		defer sl.Logout(cmd.Context())

		store, err := itemcache.Open(cfg.ItemCacheDir)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Put(items); err != nil {
			return err
		}
		fmt.Printf("cached %d items\n", len(items))
		return nil
	},
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the cached items",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.ItemCacheDir == "" {
			return fmt.Errorf("item_cache_dir is not configured")
		}

		store, err := itemcache.Open(cfg.ItemCacheDir)
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.List()
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%s\t%s\n", item.ItemCode, item.ItemName)
		}
		return nil
	},
}

func init() {
	itemsRefreshCmd.Flags().IntVar(&flagItemsTop, "top", constants.DefaultItemsPageSize, "number of items to fetch")
	itemsCmd.AddCommand(itemsRefreshCmd)
	itemsCmd.AddCommand(itemsListCmd)
	rootCmd.AddCommand(itemsCmd)
}
