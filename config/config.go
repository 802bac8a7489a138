// Package config loads Glacier configuration from glacier.toml files and
// GLACIER_* environment variables via Viper.
package config

// Config represents the Glacier configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig configures the SQLite metadata catalog
type CatalogConfig struct {
	Path          string `mapstructure:"path"`           // catalog database file
	Table         string `mapstructure:"table"`          // table the CLI operates on
	DefaultBranch string `mapstructure:"default_branch"` // reserved; engine queries always use "main"
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}
