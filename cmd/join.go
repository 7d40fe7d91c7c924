package main

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/index-enrich/internal/dataset"
)

var (
	joinConstituents string
	joinPrices       string
)

var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Inner-join the two input tables and print the result as CSV",
	Long: `Diagnostic command: loads both tables, performs the symbol inner join and
writes the joined frame to stdout without touching the API.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		constituents := cfg.Dataset.Constituents
		if joinConstituents != "" {
			constituents = joinConstituents
		}
		prices := cfg.Dataset.Prices
		if joinPrices != "" {
			prices = joinPrices
		}

		left, right, err := dataset.LoadPair(ctx, constituents, prices)
		if err != nil {
			return err
		}

		ds := cfg.Dataset
		joined, err := dataset.InnerJoin(left, right, ds.JoinKey, []string{ds.JoinKey, ds.YTDColumn})
		if err != nil {
			return err
		}

		zap.L().Info("join: complete",
			zap.Int("left_rows", len(left.Rows)),
			zap.Int("right_rows", len(right.Rows)),
			zap.Int("joined_rows", len(joined.Rows)),
		)

		w := csv.NewWriter(os.Stdout)
		if err := w.Write(joined.Header); err != nil {
			return eris.Wrap(err, "join: write header")
		}
		for _, row := range joined.Rows {
			if err := w.Write(row); err != nil {
				return eris.Wrap(err, "join: write row")
			}
		}
		w.Flush()
		return eris.Wrap(w.Error(), "join: flush")
	},
}

func init() {
	joinCmd.Flags().StringVar(&joinConstituents, "constituents", "", "path to the constituents table (default from config)")
	joinCmd.Flags().StringVar(&joinPrices, "prices", "", "path to the price-change table (default from config)")
	rootCmd.AddCommand(joinCmd)
}
