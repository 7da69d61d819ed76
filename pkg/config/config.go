/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration management for the Akaylee Mocksmith. Centralizes
paths, the preserve-set, synthesis tuning, and logging settings, loaded from
YAML files and MOCKSMITH_* environment variables via viper.
*/

package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
	"github.com/spf13/viper"
)

// DefaultPreserveFields are the field names preserved out of the box:
// response metadata and identifiers whose fabricated counterparts would break
// consumers
var DefaultPreserveFields = []string{
	"status", "message", "transId", "entity", "id", "sign",
}

// Config holds all mocksmith settings
type Config struct {
	ExamplesDir string `mapstructure:"examples_dir"`
	OutputDir   string `mapstructure:"output_dir"`

	PreserveFields      []string `mapstructure:"preserve_fields"`
	PreserveProbability float64  `mapstructure:"preserve_probability"`
	MaxDepth            int      `mapstructure:"max_depth"`
	ArrayMinItems       int      `mapstructure:"array_min_items"`
	ArrayMaxItems       int      `mapstructure:"array_max_items"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogDir    string `mapstructure:"log_dir"`
}

// SetDefaults registers default values on a viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("examples_dir", "./data/examples")
	v.SetDefault("output_dir", "./data/mock_output")
	v.SetDefault("preserve_fields", DefaultPreserveFields)
	v.SetDefault("preserve_probability", 0.7)
	v.SetDefault("max_depth", schema.DefaultMaxDepth)
	v.SetDefault("array_min_items", 1)
	v.SetDefault("array_max_items", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "custom")
	v.SetDefault("log_dir", "./logs")
}

// FromViper builds a Config from a loaded viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads the optional YAML config file and environment, returning the
// effective configuration
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.SetEnvPrefix("MOCKSMITH")
	v.AutomaticEnv()
	return FromViper(v)
}

// Validate checks the configuration for invalid or missing values
func (c *Config) Validate() error {
	if c.ExamplesDir == "" {
		return fmt.Errorf("examples_dir must not be empty")
	}
	if c.PreserveProbability < 0 || c.PreserveProbability > 1 {
		return fmt.Errorf("preserve_probability must be in [0, 1], got %v", c.PreserveProbability)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive")
	}
	if c.ArrayMinItems < 0 || c.ArrayMaxItems < c.ArrayMinItems {
		return fmt.Errorf("array item bounds invalid: [%d, %d]", c.ArrayMinItems, c.ArrayMaxItems)
	}
	if c.OutputDir != "" {
		if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
			return fmt.Errorf("cannot create output path %s: %w", c.OutputDir, err)
		}
	}
	return nil
}

// PreserveSet returns the configured preserve-set for the annotator
func (c *Config) PreserveSet() schema.PreserveSet {
	return schema.NewPreserveSet(c.PreserveFields...)
}

// AddPreserveField adds a field to the preserve list
func (c *Config) AddPreserveField(name string) {
	for _, field := range c.PreserveFields {
		if field == name {
			return
		}
	}
	c.PreserveFields = append(c.PreserveFields, name)
}

// RemovePreserveField removes a field from the preserve list
func (c *Config) RemovePreserveField(name string) {
	fields := c.PreserveFields[:0]
	for _, field := range c.PreserveFields {
		if field != name {
			fields = append(fields, field)
		}
	}
	c.PreserveFields = fields
}

// ListPreserveFields returns the preserve fields in sorted order
func (c *Config) ListPreserveFields() []string {
	fields := make([]string, len(c.PreserveFields))
	copy(fields, c.PreserveFields)
	sort.Strings(fields)
	return fields
}
