// Package config loads photospan's runtime configuration from
// .photospan.yaml, PHOTOSPAN_* environment variables, and CLI flags, in
// ascending precedence.
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/jvalecka/photospan/internal/scan"
)

// Sort key names accepted in configuration and on the command line.
const (
	SortPath    = "path"
	SortCreated = "created"
)

// Config holds all runtime configuration for one photospan invocation.
type Config struct {
	MaxIntervalDays int      `mapstructure:"max_interval_days"`
	Digits          int      `mapstructure:"digits"`
	Sort            string   `mapstructure:"sort"`
	Extensions      []string `mapstructure:"extensions"`
	Parallelism     int      `mapstructure:"parallelism"`
	Verbose         bool     `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("max_interval_days", 0)
	viper.SetDefault("digits", 0)
	viper.SetDefault("sort", SortPath)
	viper.SetDefault("extensions", scan.DefaultExtensions)
	viper.SetDefault("parallelism", 0)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// Validate rejects configurations no command can act on.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MaxIntervalDays, validation.Min(0)),
		validation.Field(&c.Digits, validation.Min(0)),
		validation.Field(&c.Sort, validation.Required, validation.In(SortPath, SortCreated)),
		validation.Field(&c.Parallelism, validation.Min(0)),
	)
}
