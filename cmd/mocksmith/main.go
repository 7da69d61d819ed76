/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Mocksmith. Provides
comprehensive command-line options, configuration management, and beautiful
user interface for inferring schemas from example data and generating mock
records with advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/akaylee-mocksmith/cmd/mocksmith/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string

	// Corpus configuration
	examplesDir string
	datasetURLs []string
	docURLs     []string
	docRendered bool
	fetchWait   time.Duration
	entity      string

	// Inference configuration
	preserveFields []string
	maxDepth       int
	noCache        bool

	// Synthesis configuration
	outputDir           string
	preserveProbability float64
	arrayMinItems       int
	arrayMaxItems       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mocksmith",
		Short: "Akaylee Mocksmith - example-driven schema inference and mock data generation",
		Long: `Akaylee Mocksmith infers a unified structural schema from heterogeneous example
documents, preserves the literal values of configured fields, and synthesizes
realistic mock records from the inferred schema. Designed for anonymizing API
response corpora while keeping their exact shape and metadata intact.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")

	// Add corpus flags
	rootCmd.PersistentFlags().StringVar(&examplesDir, "examples", "./data/examples", "Directory containing JSON example files")
	rootCmd.PersistentFlags().StringSliceVar(&datasetURLs, "dataset", []string{}, "Dataset URLs or file paths with example documents")
	rootCmd.PersistentFlags().StringSliceVar(&docURLs, "doc-page", []string{}, "Documentation page URLs to scrape for JSON examples")
	rootCmd.PersistentFlags().BoolVar(&docRendered, "doc-rendered", false, "Render documentation pages in a headless browser before scraping")
	rootCmd.PersistentFlags().DurationVar(&fetchWait, "fetch-timeout", 10*time.Second, "Timeout for remote example fetches")
	rootCmd.PersistentFlags().StringVar(&entity, "entity", "", "Only use examples whose top-level entity matches")

	// Add inference flags
	rootCmd.PersistentFlags().StringSliceVar(&preserveFields, "preserve-fields", nil, "Field names whose observed values are preserved")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 10, "Maximum analysis recursion depth")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the schema cache and always recompute")

	// Add synthesis flags
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "./data/mock_output", "Directory for generated mock data")
	rootCmd.PersistentFlags().Float64Var(&preserveProbability, "preserve-probability", 0.7, "Probability of sampling a preserved field from its observed values")
	rootCmd.PersistentFlags().IntVar(&arrayMinItems, "array-min-items", 1, "Minimum synthesized array length")
	rootCmd.PersistentFlags().IntVar(&arrayMaxItems, "array-max-items", 5, "Maximum synthesized array length")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("examples_dir", rootCmd.PersistentFlags().Lookup("examples"))
	viper.BindPFlag("dataset_urls", rootCmd.PersistentFlags().Lookup("dataset"))
	viper.BindPFlag("doc_urls", rootCmd.PersistentFlags().Lookup("doc-page"))
	viper.BindPFlag("doc_rendered", rootCmd.PersistentFlags().Lookup("doc-rendered"))
	viper.BindPFlag("fetch_timeout", rootCmd.PersistentFlags().Lookup("fetch-timeout"))
	viper.BindPFlag("entity", rootCmd.PersistentFlags().Lookup("entity"))
	viper.BindPFlag("preserve_fields", rootCmd.PersistentFlags().Lookup("preserve-fields"))
	viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	viper.BindPFlag("no_cache", rootCmd.PersistentFlags().Lookup("no-cache"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("preserve_probability", rootCmd.PersistentFlags().Lookup("preserve-probability"))
	viper.BindPFlag("array_min_items", rootCmd.PersistentFlags().Lookup("array-min-items"))
	viper.BindPFlag("array_max_items", rootCmd.PersistentFlags().Lookup("array-max-items"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer a structural schema from example documents",
		Long: `Load the example corpus, infer the unified structural schema across all
examples, annotate preserved fields with their observed values, and print the
schema as JSON or write it to a file.`,
		RunE: commands.RunInfer,
	}
	inferCmd.Flags().String("schema-out", "", "Write the inferred schema JSON to this file instead of stdout")
	viper.BindPFlag("schema_out", inferCmd.Flags().Lookup("schema-out"))
	rootCmd.AddCommand(inferCmd)

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate mock records from the inferred schema",
		Long: `Infer the schema from the example corpus and synthesize mock records from
it, sampling preserved fields from their observed values and fabricating the
rest. Records are written to timestamped JSON files in the output directory.`,
		RunE: commands.RunGenerate,
	}
	generateCmd.Flags().Int("records", 10, "Number of mock records to generate")
	generateCmd.Flags().String("schema-name", "mock", "Name used for the output file")
	viper.BindPFlag("records", generateCmd.Flags().Lookup("records"))
	viper.BindPFlag("schema_name", generateCmd.Flags().Lookup("schema-name"))
	rootCmd.AddCommand(generateCmd)

	// Add analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarize the example corpus",
		Long: `Scan the example corpus and report the entities it contains, the set of
field paths observed, and the most common values per field. PII field names
are excluded from the report.`,
		RunE: commands.RunAnalyze,
	}
	analyzeCmd.Flags().String("summary-out", "", "Write the summary JSON to this file instead of stdout")
	viper.BindPFlag("summary_out", analyzeCmd.Flags().Lookup("summary-out"))
	rootCmd.AddCommand(analyzeCmd)

	// Add validate command
	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate generated records against the inferred schema",
		Long: `Infer the schema from the example corpus and validate every record in the
given JSON file against it, reporting kind mismatches, unexpected properties,
and preserved fields that drifted outside their observed values.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunValidate,
	}
	rootCmd.AddCommand(validateCmd)

	// Add preserve command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "preserve",
		Short: "List the configured preserve fields",
		Long: `List the field names whose observed values are preserved during synthesis
instead of being fabricated.`,
		RunE: commands.RunPreserve,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
