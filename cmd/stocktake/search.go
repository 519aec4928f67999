package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tleving/stocktake/internal/inventory"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <column=value>",
	Short: "Search inventory rows by exact column value",
	Long: `Search inventory rows by exact column value.

The predicate is column=value: the named column's text is compared
case-sensitively against the value. A column the dataset does not have
matches nothing. Result order follows the dataset's row order.

Examples:
  stocktake search "category=electronics" --dir ./exports
  stocktake search "quantity=4" --dir ./exports --human`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store := mustLoadStore(inventoryDir)

	rows, err := inventory.Search(store, args[0])
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(rows) == 0 {
			fmt.Println("No results found")
		} else {
			fmt.Printf("Found %d rows:\n\n", len(rows))
			renderRows(os.Stdout, store.Columns(), rows)
		}
	} else {
		outputJSON(rows)
	}
	return nil
}
