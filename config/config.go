package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".cineshell"))
		}

		// Check /etc
		v.AddConfigPath("/etc/cineshell/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// OMDb defaults
	v.SetDefault("omdb.url", "https://www.omdbapi.com/")
	v.SetDefault("omdb.popular_queries", []string{"Avengers", "Batman", "Spider"})
	v.SetDefault("omdb.requests_per_second", 4.0)

	// Storage defaults
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("storage.path", filepath.Join(home, ".cineshell"))
	} else {
		v.SetDefault("storage.path", ".cineshell")
	}

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.OMDb.URL == "" {
		return fmt.Errorf("omdb.url is required")
	}

	if cfg.OMDb.APIKey == "" || cfg.OMDb.APIKey == "your-api-key-here" {
		return fmt.Errorf("omdb.api_key must be set to a valid API key")
	}

	if len(cfg.OMDb.PopularQueries) == 0 {
		return fmt.Errorf("omdb.popular_queries must contain at least one query")
	}

	if cfg.OMDb.RequestsPerSecond <= 0 {
		return fmt.Errorf("omdb.requests_per_second must be positive")
	}

	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
