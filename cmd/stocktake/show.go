package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [n]",
	Short: "Display the first rows of the dataset",
	Long: `Display the first n rows of the dataset in ingestion order.
Without an argument, shows the configured default (5).

Examples:
  stocktake show --dir ./exports
  stocktake show 20 --dir ./exports --human`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	n := cfg.DefaultShowRows
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			exitWithError(ExitError, "invalid row count %q", args[0])
		}
		n = v
	}

	store := mustLoadStore(inventoryDir)
	rows := store.Preview(n)

	if humanOutput {
		if len(rows) == 0 {
			fmt.Println("No rows to show")
		} else {
			renderRows(os.Stdout, store.Columns(), rows)
		}
	} else {
		outputJSON(rows)
	}
	return nil
}
