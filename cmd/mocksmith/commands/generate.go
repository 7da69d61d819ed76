/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation for the Akaylee Mocksmith. Infers
the schema from the example corpus, synthesizes the requested number of mock
records, and writes them to timestamped JSON files in the output directory.
*/

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-mocksmith/pkg/synth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGenerate executes the mock data generation process
func RunGenerate(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Akaylee Mocksmith - Mock Data Generation")
	fmt.Println("===========================================")
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

	fingerprint, err := c.Fingerprint()
	if err != nil {
		return err
	}

	engine := BuildEngine(cfg, logger)
	node, err := engine.InferStructure(c.Values(), fingerprint)
	if err != nil {
		return fmt.Errorf("schema inference failed: %w", err)
	}

	synthesizer := synth.NewSynthesizer(
		synth.NewHeuristicProducer(),
		synth.WithPreserveProbability(cfg.PreserveProbability),
		synth.WithArrayBounds(cfg.ArrayMinItems, cfg.ArrayMaxItems),
	)

	count := viper.GetInt("records")
	start := time.Now()
	records, err := synthesizer.SynthesizeRecords(node, count)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	batchID := uuid.NewString()
	log.LogGeneration(batchID, len(records), time.Since(start), nil)

	path, err := saveRecords(cfg.OutputDir, viper.GetString("schema_name"), records)
	if err != nil {
		return err
	}

	fmt.Printf("✨ Generated %d records to %s\n", len(records), path)
	return nil
}

// saveRecords writes the generated records to a timestamped JSON file
func saveRecords(outputDir, schemaName string, records []interface{}) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(outputDir, fmt.Sprintf("%s_mock_%s.json", schemaName, timestamp))

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return path, nil
}
