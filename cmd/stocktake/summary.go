package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tleving/stocktake/internal/inventory"
)

var summaryOut string

func init() {
	summaryCmd.Flags().StringVar(&summaryOut, "out", "", "Write the report to a CSV file at this path")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregate quantity and price per category",
	Long: `Aggregate the dataset per category: total quantity, average price,
and row count per group. Rows without a category value land in the
"unspecified" group. Groups appear in the order their category was first
seen.

Examples:
  stocktake summary --dir ./exports
  stocktake summary --dir ./exports --out summary_report.csv --human`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	store := mustLoadStore(inventoryDir)
	report := inventory.Summarize(store, reportOptions())

	if summaryOut != "" {
		if err := inventory.WriteReportFile(summaryOut, report); err != nil {
			exitWithError(ExitError, "writing report: %v", err)
		}
	}

	if humanOutput {
		renderReport(os.Stdout, report)
		if summaryOut != "" {
			fmt.Printf("\nSummary report exported to %s\n", summaryOut)
		}
	} else {
		outputJSON(report)
	}
	return nil
}
