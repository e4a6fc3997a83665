// Package config provides process configuration for the pedigree engine's
// ambient concerns: logging and the cousin-computation defaults exposed to
// the cmd/pedigreectl CLI. The engine packages themselves (internal/pedigree,
// internal/cousin) never read environment variables directly; every
// setting flows in as an explicit value.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds process-wide configuration loaded from the environment.
type Config struct {
	// LogLevel is one of debug, info, warn, error (default: info).
	LogLevel string
	// LogFormat is one of text, json (default: text).
	LogFormat string

	// CacheDirectory is where the cousin on-disk cache stores its files
	// (default: ./pedigree-cache).
	CacheDirectory string
	// CacheEnabled toggles the cousin on-disk cache (default: false).
	CacheEnabled bool

	// DefaultMaxAncestorLevel and DefaultMaxDescendantLevel seed
	// CousinComputationSettings.MaxDepthA/MaxDepthB when the CLI does not
	// override them (default: unset, meaning unbounded).
	DefaultMaxAncestorLevel   int
	DefaultMaxDescendantLevel int
}

// Load reads configuration from environment variables via Viper.
func Load() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cache_directory", "./pedigree-cache")
	v.SetDefault("cache_enabled", false)
	v.SetDefault("default_max_ancestor_level", 0)
	v.SetDefault("default_max_descendant_level", 0)

	return &Config{
		LogLevel:                  v.GetString("log_level"),
		LogFormat:                 v.GetString("log_format"),
		CacheDirectory:            v.GetString("cache_directory"),
		CacheEnabled:              v.GetBool("cache_enabled"),
		DefaultMaxAncestorLevel:   v.GetInt("default_max_ancestor_level"),
		DefaultMaxDescendantLevel: v.GetInt("default_max_descendant_level"),
	}
}

// LoggingConfig is the subset of Config internal/logging needs; kept as a
// distinct type so internal/logging does not depend on the cache/CLI
// fields above.
type LoggingConfig struct {
	Level  string
	Format string
}

// Logging extracts this config's logging-relevant fields.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{Level: c.LogLevel, Format: c.LogFormat}
}
