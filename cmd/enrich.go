package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/index-enrich/internal/model"
	"github.com/sells-group/index-enrich/internal/pipeline"
	"github.com/sells-group/index-enrich/pkg/anthropic"
)

var (
	enrichConstituents string
	enrichPrices       string
	enrichLimit        int
	enrichOffline      bool
	enrichDryRun       bool
	enrichOutput       string
	enrichFormat       string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run the full enrichment pipeline",
	Long: `Loads the constituent and price-change tables, inner-joins them on symbol,
classifies every joined row into a sector via Claude, tallies sector counts
and prints a YTD-based sector/company recommendation.

Examples:
  # Dry run — load and join only, no API calls
  index-enrich enrich --dry-run

  # Offline full pipeline (no API key needed)
  index-enrich enrich --offline

  # Real run over explicit inputs, exporting the enriched table
  index-enrich enrich --constituents nasdaq100.csv --prices nasdaq100_price_change.csv --output enriched.csv --format csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		constituents, prices := inputPaths()

		// Credential check happens before anything touches the network.
		if !enrichDryRun && !enrichOffline {
			if err := validateAPIKey(); err != nil {
				return err
			}
		}

		taxonomy, err := loadTaxonomy()
		if err != nil {
			return err
		}

		var client anthropic.Client
		if enrichOffline {
			client = &pipeline.StubAnthropicClient{}
		} else {
			client = anthropic.NewClient(cfg.Anthropic.Key)
		}

		p := pipeline.New(cfg,
			pipeline.NewClassifier(client, cfg.Anthropic, taxonomy),
			pipeline.NewRecommender(client, cfg.Anthropic, cfg.Recommend),
		)

		if enrichDryRun {
			table, joinErr := p.Join(ctx, constituents, prices)
			if joinErr != nil {
				return joinErr
			}
			applyLimit(table)
			return printTableJSON(table)
		}

		report, runErr := p.Run(ctx, constituents, prices, enrichLimit)
		if runErr != nil {
			// Labels written before the failure are still reported.
			if report != nil && len(report.Results) > 0 {
				zap.L().Warn("enrich: run failed with partial results",
					zap.Int("classified", len(report.Tally)),
					zap.Int("attempted", len(report.Results)),
				)
			}
			return runErr
		}

		printReport(report)

		if enrichOutput != "" {
			if err := writeOutput(report); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichConstituents, "constituents", "", "path to the constituents table (default from config)")
	enrichCmd.Flags().StringVar(&enrichPrices, "prices", "", "path to the price-change table (default from config)")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 0, "max joined rows to classify (0 = all)")
	enrichCmd.Flags().BoolVar(&enrichOffline, "offline", false, "use a stub client (no API key needed)")
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "load and join only, print the table, skip all API calls")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "", "write the enriched table to a file")
	enrichCmd.Flags().StringVar(&enrichFormat, "format", "json", "output format: json (default) or csv")
	rootCmd.AddCommand(enrichCmd)
}

// inputPaths resolves input files: flags win over config.
func inputPaths() (string, string) {
	constituents := cfg.Dataset.Constituents
	if enrichConstituents != "" {
		constituents = enrichConstituents
	}
	prices := cfg.Dataset.Prices
	if enrichPrices != "" {
		prices = enrichPrices
	}
	return constituents, prices
}

// validateAPIKey fails fast when the Anthropic credential is absent.
func validateAPIKey() error {
	if cfg.Anthropic.Key == "" {
		return eris.New("enrich: ENRICH_ANTHROPIC_KEY is not set; set it or use --offline / --dry-run")
	}
	return nil
}

// loadTaxonomy returns the configured taxonomy override or the built-in set.
func loadTaxonomy() (model.Taxonomy, error) {
	if cfg.Classify.TaxonomyFile == "" {
		return model.DefaultTaxonomy(), nil
	}
	return model.LoadTaxonomy(cfg.Classify.TaxonomyFile)
}

// applyLimit truncates the table to the --limit row count.
func applyLimit(table *model.Table) {
	if enrichLimit > 0 && enrichLimit < table.Len() {
		table.Records = table.Records[:enrichLimit]
	}
}

// printTableJSON prints the joined table as indented JSON.
func printTableJSON(table *model.Table) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(table)
}

// printReport prints the tally and the recommendation to stdout.
func printReport(report *model.EnrichmentReport) {
	fmt.Println("Sector counts:")
	for _, sector := range pipeline.SortedSectors(report.Tally) {
		fmt.Printf("  %-20s %d\n", sector, report.Tally[sector])
	}
	fmt.Println()
	fmt.Println("Stock Recommendations:")
	fmt.Println(report.Recommendation)
}

// writeOutput writes the enriched table per --format.
func writeOutput(report *model.EnrichmentReport) error {
	if enrichFormat == "csv" {
		return pipeline.ExportCSV(report.Table, enrichOutput)
	}

	f, err := os.Create(enrichOutput)
	if err != nil {
		return eris.Wrap(err, "enrich: create output file")
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
