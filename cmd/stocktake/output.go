package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tleving/stocktake/internal/inventory"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// renderRows writes rows as an aligned table, NULL for absent cells.
func renderRows(w io.Writer, columns []string, rows []inventory.Row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(seps, "\t"))

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v := row.Value(col); v.IsNull() {
				cells[i] = "NULL"
			} else {
				cells[i] = v.String()
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// renderReport writes the summary groups as an aligned table.
func renderReport(w io.Writer, rows []inventory.ReportRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(inventory.ReportColumns, "\t"))
	for _, r := range rows {
		avg := "NULL"
		if r.AveragePrice != nil {
			avg = r.AveragePrice.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.Category, r.TotalQuantity.String(), avg, r.RowCount)
	}
	tw.Flush()
}

// mustLoadStore loads the inventory directory or exits. Per-file failures
// are warned about on stderr but do not abort: the remaining files still
// load.
func mustLoadStore(dir string) *inventory.Store {
	if dir == "" {
		dir = cfg.InventoryDir
	}
	if dir == "" {
		exitWithError(ExitConfigError, "no inventory directory: pass --dir or set inventory_dir in the config")
	}

	store, fails, err := inventory.Load(dir, inventory.WithLogger(log))
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	for _, fe := range fails {
		fmt.Fprintf(os.Stderr, "warning: %v\n", fe)
	}
	return store
}

// reportOptions maps the configured column names onto the report engine.
func reportOptions() inventory.ReportOptions {
	return inventory.ReportOptions{
		CategoryColumn: cfg.CategoryColumn,
		QuantityColumn: cfg.QuantityColumn,
		PriceColumn:    cfg.PriceColumn,
	}
}
