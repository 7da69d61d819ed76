/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: preserve.go
Description: Preserve command implementation for the Akaylee Mocksmith. Lists
the configured preserve fields whose observed values are sampled instead of
fabricated during synthesis.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunPreserve lists the configured preserve fields
func RunPreserve(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fields := cfg.ListPreserveFields()
	fmt.Printf("Preserve fields (%d):\n", len(fields))
	for _, field := range fields {
		fmt.Printf("  - %s\n", field)
	}
	return nil
}
