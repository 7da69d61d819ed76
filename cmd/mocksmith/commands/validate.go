/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validate.go
Description: Validate command implementation for the Akaylee Mocksmith. Checks
every record in a generated JSON file against the schema inferred from the
example corpus and reports all findings.
*/

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-mocksmith/pkg/validate"
	"github.com/spf13/cobra"
)

// RunValidate executes the validation process
func RunValidate(cmd *cobra.Command, args []string) error {
	fmt.Println("✅ Akaylee Mocksmith - Output Validation")
	fmt.Println("========================================")
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

	target := args[0]
	data, err := os.ReadFile(target)
	if err != nil {
		return fmt.Errorf("failed to read target file: %w", err)
	}

	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse target file: %w", err)
	}

	records, ok := parsed.([]interface{})
	if !ok {
		records = []interface{}{parsed}
	}

	total := 0
	for i, record := range records {
		issues := validate.Validate(record, node)
		for _, issue := range issues {
			fmt.Printf("  record %d: %s\n", i, issue)
		}
		total += len(issues)
	}

	log.LogValidation(target, total, map[string]interface{}{
		"records": len(records),
	})

	if total > 0 {
		return fmt.Errorf("validation found %d issues in %d records", total, len(records))
	}
	fmt.Printf("✨ All %d records conform to the inferred schema\n", len(records))
	return nil
}
