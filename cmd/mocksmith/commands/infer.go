/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation for the Akaylee Mocksmith. Loads the
example corpus, runs the schema inference pipeline, and emits the annotated
structural schema as JSON.
*/

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunInfer executes the schema inference process
func RunInfer(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Mocksmith - Schema Inference")
	fmt.Println("=======================================")
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
	start := time.Now()
	node, err := engine.InferStructure(c.Values(), fingerprint)
	if err != nil {
		return fmt.Errorf("schema inference failed: %w", err)
	}

	log.LogInference(fingerprint, c.Len(), false, time.Since(start), nil)

	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}

	if out := viper.GetString("schema_out"); out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		}
		fmt.Printf("✨ Schema written to %s\n", out)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
