/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command implementation for the Akaylee Mocksmith.
Summarizes the example corpus: entities, field paths, and most common values
per field, with PII field names excluded from the report.
*/

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-mocksmith/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunAnalyze executes the corpus analysis process
func RunAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("📊 Akaylee Mocksmith - Corpus Analysis")
	fmt.Println("======================================")
	fmt.Println()

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer log.Close()
	logger := log.GetLogger()

	ctx := context.Background()
	c, err := LoadCorpus(ctx, cfg, logger)
	if err != nil {
		return err
	}

	profiler := profile.NewProfiler()
	summary := profiler.Profile(c.Documents())

	if out := viper.GetString("summary_out"); out != "" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize summary: %w", err)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write summary file: %w", err)
		}
		fmt.Printf("✨ Summary written to %s\n", out)
		return nil
	}

	fmt.Println("Entities found:")
	for _, entity := range summary.Entities {
		fmt.Printf("  - %s\n", entity)
	}
	fmt.Printf("\nTotal unique fields: %d\n", len(summary.Fields))
	fmt.Println("Sample fields:")
	for i, field := range summary.Fields {
		if i >= 10 {
			break
		}
		fmt.Printf("  - %s\n", field)
	}
	fmt.Println("\nSample value distributions:")
	shown := 0
	for _, field := range summary.Fields {
		values, ok := summary.TopValues[field]
		if !ok {
			continue
		}
		fmt.Printf("  - %s: %v\n", field, values)
		shown++
		if shown >= 10 {
			break
		}
	}
	return nil
}
