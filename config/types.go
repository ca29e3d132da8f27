package config

// Config represents the complete configuration structure
type Config struct {
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OMDbConfig holds OMDb API connection details
type OMDbConfig struct {
	URL               string   `mapstructure:"url"`
	APIKey            string   `mapstructure:"api_key"`
	PopularQueries    []string `mapstructure:"popular_queries"`
	RequestsPerSecond float64  `mapstructure:"requests_per_second"`
}

// StorageConfig locates the local state directory holding the
// credential and session records
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
