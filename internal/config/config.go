package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the server and sync CLIs need. All keys can be
// set in config.yaml or overridden via environment variables with the
// SURVEY_ prefix (SURVEY_LISTEN_ADDR, SURVEY_NEXUS_API_KEY, ...).
type Config struct {
	ListenAddr      string   `mapstructure:"listen_addr"`
	DataPath        string   `mapstructure:"data_path"`
	TranscriptsDir  string   `mapstructure:"transcripts_dir"`
	SyncDBPath      string   `mapstructure:"sync_db_path"`
	NexusWebhookURL string   `mapstructure:"nexus_webhook_url"`
	NexusAPIKey     string   `mapstructure:"nexus_api_key"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	LogLevel        string   `mapstructure:"log_level"`
}

// Load reads .env (when present), config.yaml (when present), and the
// environment, in increasing priority.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("SURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Defaults register every key with viper, which is what lets
	// AutomaticEnv overrides reach Unmarshal.
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("data_path", "data/data.md")
	v.SetDefault("transcripts_dir", "transcripts")
	v.SetDefault("sync_db_path", ".nexus-sync.db")
	v.SetDefault("nexus_webhook_url", "")
	v.SetDefault("nexus_api_key", "")
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Legacy env names used by the original deployment keep working.
	if cfg.NexusAPIKey == "" {
		cfg.NexusAPIKey = os.Getenv("NEXUS_API_KEY")
	}
	if url := os.Getenv("NEXUS_WEBHOOK_URL"); url != "" && cfg.NexusWebhookURL == "" {
		cfg.NexusWebhookURL = url
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	if cfg.TranscriptsDir == "" {
		return fmt.Errorf("transcripts_dir is required")
	}
	return nil
}
