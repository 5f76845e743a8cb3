package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vegorov/pubgen/internal/adapters/ajv"
	"github.com/vegorov/pubgen/internal/adapters/invest"
	"github.com/vegorov/pubgen/internal/adapters/tiers"
	"github.com/vegorov/pubgen/internal/application"
)

const defaultSchemaPath = "tests/examples/investment-research/publications/invest-publications.schema.json"

// Variables to hold flag values
var (
	sizeLabel  string
	outputPath string
	schemaPath string
	validate   bool
	seed       int64
	tiersPath  string
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var rootCmd = &cobra.Command{
		Use:   "pubgen",
		Short: "Generates large investment-publication JSON test files.",
		Long: `pubgen synthesizes large, schema-conformant JSON documents for
stress-testing a schema registry. Each document is a complete publication
hierarchy (publication, chapters, blocks, views) filled with randomized
investment content, embedded base64 image payloads, chart specs and metric
tables, sized by tier to roughly 1-15MB.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// --- Composition Root: Initialize Adapters and Core Logic ---
			registry := tiers.NewStaticRegistry()
			if tiersPath != "" {
				var err error
				registry, err = tiers.LoadFile(tiersPath)
				if err != nil {
					log.Errorf("invalid tier file: %v", err)
					os.Exit(1)
				}
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|0x9e3779b9))
			service := application.NewPublicationService(invest.New(rng), registry, ajv.New(), log)
			// --- End Composition Root ---

			if outputPath == "" {
				outputPath = application.DefaultOutputName(sizeLabel)
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = fmt.Sprintf(" Generating %s (%s)...", outputPath, sizeLabel)
			sp.Start()
			result, err := service.Run(application.Request{
				Size:     sizeLabel,
				Output:   outputPath,
				Schema:   schemaPath,
				Validate: validate,
			})
			sp.Stop()
			if err != nil {
				log.Errorf("generation failed: %v", err)
				os.Exit(1)
			}

			log.Infof("generated %s: %.2f MB", result.Path, float64(result.SizeBytes)/(1024*1024))
			log.Infof("structure: %d chapters x %d blocks, ~%d images at ~%dKB base64 each",
				result.Tier.Chapters, result.Tier.BlocksPerChapter, result.Tier.ImageCount, result.Tier.Base64Multiplier)
		},
	}

	// Define flags
	sizeHint := strings.Join(tiers.NewStaticRegistry().Labels(), ", ")
	rootCmd.Flags().StringVar(&sizeLabel, "size", "1mb", fmt.Sprintf("Target file size tier (%s)", sizeHint))
	rootCmd.Flags().StringVar(&outputPath, "output", "", "Output filename (default: large-publication-{size}.json)")
	rootCmd.Flags().StringVar(&schemaPath, "schema", defaultSchemaPath, "Schema file path for validation")
	rootCmd.Flags().BoolVar(&validate, "validate", false, "Validate generated JSON against the schema (requires ajv-cli)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output (default: time-based)")
	rootCmd.Flags().StringVar(&tiersPath, "tiers", "", "YAML file overriding the built-in size tiers")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
