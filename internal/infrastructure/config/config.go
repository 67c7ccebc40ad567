package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	Analytics AnalyticsConfig
	Dedup     DedupConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AnalyticsConfig holds dashboard analytics defaults
type AnalyticsConfig struct {
	ExpiringLookaheadDays int // default window for the expiring-soon report
	UsageRateWindowDays   int // default window for trailing usage-rate queries
}

// DedupConfig holds duplicate-detection thresholds
type DedupConfig struct {
	MaxNameDistance int    // edit-distance threshold for name matches
	PriceEpsilon    string // absolute price difference treated as equal
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with INVENTORY_ prefix (e.g., INVENTORY_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Analytics: AnalyticsConfig{
			ExpiringLookaheadDays: v.GetInt("analytics.expiring_lookahead_days"),
			UsageRateWindowDays:   v.GetInt("analytics.usage_rate_window_days"),
		},
		Dedup: DedupConfig{
			MaxNameDistance: v.GetInt("dedup.max_name_distance"),
			PriceEpsilon:    v.GetString("dedup.price_epsilon"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "inventory-tracker")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("analytics.expiring_lookahead_days", 30)
	v.SetDefault("analytics.usage_rate_window_days", 30)
	v.SetDefault("dedup.max_name_distance", 2)
	v.SetDefault("dedup.price_epsilon", "0.01")
}

func validate(cfg *Config) error {
	if cfg.Analytics.ExpiringLookaheadDays <= 0 {
		return fmt.Errorf("analytics.expiring_lookahead_days must be positive, got %d", cfg.Analytics.ExpiringLookaheadDays)
	}
	if cfg.Analytics.UsageRateWindowDays <= 0 {
		return fmt.Errorf("analytics.usage_rate_window_days must be positive, got %d", cfg.Analytics.UsageRateWindowDays)
	}
	if cfg.Dedup.MaxNameDistance < 0 {
		return fmt.Errorf("dedup.max_name_distance cannot be negative, got %d", cfg.Dedup.MaxNameDistance)
	}
	return nil
}
