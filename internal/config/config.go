package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the assay configuration.
type Config struct {
	BanksDir string         `mapstructure:"banksDir"`
	Format   string         `mapstructure:"format"`
	Output   string         `mapstructure:"output"`
	Quiet    bool           `mapstructure:"quiet"`
	Verbose  bool           `mapstructure:"verbose"`
	Insights InsightsConfig `mapstructure:"insights"`
}

// InsightsConfig tunes the report's insight lists.
type InsightsConfig struct {
	MaxStrengths       int     `mapstructure:"maxStrengths"`
	MaxWeaknesses      int     `mapstructure:"maxWeaknesses"`
	MaxRecommendations int     `mapstructure:"maxRecommendations"`
	PriorityCutoff     float64 `mapstructure:"priorityCutoff"`
}

// LoadConfig loads configuration from config files, environment variables
// and defaults. banksDir, when non-empty, overrides the configured value.
func LoadConfig(banksDir string) (*Config, error) {
	viper.SetDefault("banksDir", "banks")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("insights.maxStrengths", 4)
	viper.SetDefault("insights.maxWeaknesses", 4)
	viper.SetDefault("insights.maxRecommendations", 5)
	viper.SetDefault("insights.priorityCutoff", 1.1)

	configPaths := []string{".assayrc.json", ".assayrc.yaml", ".assayrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("ASSAY")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if banksDir != "" {
		config.BanksDir = banksDir
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if config.BanksDir == "" {
		return fmt.Errorf("banksDir must not be empty")
	}
	if config.Insights.MaxStrengths < 1 || config.Insights.MaxWeaknesses < 1 || config.Insights.MaxRecommendations < 1 {
		return fmt.Errorf("insight caps must be at least 1")
	}
	if config.Insights.PriorityCutoff <= 0 {
		return fmt.Errorf("priorityCutoff must be strictly positive")
	}
	return nil
}
