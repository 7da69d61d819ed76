/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Mocksmith commands. Provides
common configuration loading, logging setup, corpus assembly, and pipeline
construction used across all command implementations.
*/

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kleascm/akaylee-mocksmith/pkg/cache"
	"github.com/kleascm/akaylee-mocksmith/pkg/config"
	"github.com/kleascm/akaylee-mocksmith/pkg/corpus"
	"github.com/kleascm/akaylee-mocksmith/pkg/inference"
	"github.com/kleascm/akaylee-mocksmith/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() (*config.Config, error) {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("MOCKSMITH")
	viper.AutomaticEnv()

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SetupLogging configures the logging system
func SetupLogging() (*logging.Logger, error) {
	cfg := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  10,
		MaxSize:   100 * 1024 * 1024,
		Timestamp: true,
		Caller:    false,
		Colors:    true,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	return logging.NewLogger(cfg)
}

// BuildSources assembles the configured example sources
func BuildSources(cfg *config.Config, logger *logrus.Logger) []corpus.Source {
	timeout := viper.GetDuration("fetch_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sources := []corpus.Source{
		corpus.NewDirectorySource(cfg.ExamplesDir, logger),
	}
	for _, url := range viper.GetStringSlice("dataset_urls") {
		sources = append(sources, corpus.NewDatasetSource(fmt.Sprintf("dataset:%s", url), url, timeout))
	}
	rendered := viper.GetBool("doc_rendered")
	for _, url := range viper.GetStringSlice("doc_urls") {
		sources = append(sources, corpus.NewDocSource(fmt.Sprintf("doc:%s", url), url, rendered, timeout, logger))
	}
	return sources
}

// LoadCorpus gathers the example corpus from all configured sources, applying
// the entity filter when one is set
func LoadCorpus(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*corpus.Corpus, error) {
	c := corpus.Load(ctx, logger, BuildSources(cfg, logger)...)
	if entity := viper.GetString("entity"); entity != "" {
		c = c.FilterByEntity("entity", entity)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("no example documents found")
	}
	return c, nil
}

// BuildEngine constructs the inference engine from configuration
func BuildEngine(cfg *config.Config, logger *logrus.Logger) *inference.Engine {
	schemaCache := cache.New(cache.NewMemoryStore())
	if viper.GetBool("no_cache") {
		schemaCache = cache.NewBypass()
	}

	return inference.NewEngine(
		inference.WithCache(schemaCache),
		inference.WithPreserveSet(cfg.PreserveSet()),
		inference.WithMaxDepth(cfg.MaxDepth),
		inference.WithLogger(logger),
	)
}
