package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"

	defaultBaseURL = "https://authlink.guildedapi.com/api/v1"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	ClientID     string `mapstructure:"authlink_client_id" json:"client_id"`
	ClientSecret string `mapstructure:"authlink_client_secret" json:"-"`
	RedirectURI  string `mapstructure:"authlink_redirect_uri" json:"redirect_uri"`
	BaseURL      string `mapstructure:"authlink_base_url" json:"base_url"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	ProfileStoreType string `mapstructure:"profile_store_type"`
	ProfileStorePath string `mapstructure:"profile_store_path"`
	OutputFormat     string `mapstructure:"output_format"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "authlink")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("authlink_client_id", "")
	v.SetDefault("authlink_client_secret", "")
	v.SetDefault("authlink_redirect_uri", "")
	v.SetDefault("authlink_base_url", defaultBaseURL)
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("profile_store_type", "bbolt")
	v.SetDefault("profile_store_path", "./data/profiles.db")
	v.SetDefault("output_format", OutputJSON)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.ClientSecret = strings.TrimSpace(cfg.ClientSecret)
	cfg.RedirectURI = strings.TrimSpace(cfg.RedirectURI)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid authlink_base_url (must not be empty)")
	}

	if cfg.HTTPTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("invalid output_format %q (expected json or yaml)", cfg.OutputFormat)
	}

	return &cfg, nil
}
