package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file plus environment
// variables. A .env file in the working directory is honored when present.
func Load(configFile string) (*Config, error) {
	// Best-effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GFB1")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults also register the keys so AutomaticEnv can bind them.
	v.SetDefault("sap_endpoint", "")
	v.SetDefault("sap_company_db", "")
	v.SetDefault("sap_username", "")
	v.SetDefault("sap_password", "")
	v.SetDefault("encryption_secret", "")
	v.SetDefault("sap_debug", false)
	v.SetDefault("sap_ssl_verify", false)
	v.SetDefault("listen_addr", ":8780")
	v.SetDefault("item_cache_dir", "")
	v.SetDefault("feeds_file", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("gf-b1-bridge")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.gf-b1-bridge")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.Feeds = map[string]*FeedSettings{}
	if cfg.FeedsFile != "" {
		raw, err := os.ReadFile(cfg.FeedsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read feeds file: %w", err)
		}
		if err := json.Unmarshal(raw, &cfg.Feeds); err != nil {
			return nil, fmt.Errorf("failed to parse feeds file: %w", err)
		}
	}
	return &cfg, nil
}
