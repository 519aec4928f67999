package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// UnspecifiedCategory labels the group collecting rows whose category cell
// is missing or null.
const UnspecifiedCategory = "unspecified"

// ReportOptions name the columns the summary groups and aggregates over.
// Zero-value fields fall back to the conventional column names.
type ReportOptions struct {
	CategoryColumn string
	QuantityColumn string
	PriceColumn    string
}

// DefaultReportOptions returns the conventional inventory column names.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		CategoryColumn: "category",
		QuantityColumn: "quantity",
		PriceColumn:    "price",
	}
}

func (o ReportOptions) withDefaults() ReportOptions {
	def := DefaultReportOptions()
	if o.CategoryColumn == "" {
		o.CategoryColumn = def.CategoryColumn
	}
	if o.QuantityColumn == "" {
		o.QuantityColumn = def.QuantityColumn
	}
	if o.PriceColumn == "" {
		o.PriceColumn = def.PriceColumn
	}
	return o
}

// ReportRow is one aggregated summary record per category group.
// AveragePrice is nil when no price in the group parsed numerically.
type ReportRow struct {
	Category      string           `json:"category"`
	TotalQuantity decimal.Decimal  `json:"total_quantity"`
	AveragePrice  *decimal.Decimal `json:"average_price"`
	RowCount      int              `json:"row_count"`
}

// Summarize groups the store's rows by category and aggregates quantity and
// price per group. Groups appear in first-seen order. Cells that fail
// numeric parsing contribute nothing to the sums but the row still counts
// toward RowCount.
func Summarize(store *Store, opts ReportOptions) []ReportRow {
	opts = opts.withDefaults()

	type group struct {
		quantity decimal.Decimal
		priceSum decimal.Decimal
		prices   int
		rows     int
	}

	var order []string
	groups := make(map[string]*group)

	for row := range store.All() {
		category := UnspecifiedCategory
		if v := row.Value(opts.CategoryColumn); !v.IsNull() {
			category = v.String()
		}

		g, ok := groups[category]
		if !ok {
			g = &group{}
			groups[category] = g
			order = append(order, category)
		}

		g.rows++
		if q, ok := row.Value(opts.QuantityColumn).Decimal(); ok {
			g.quantity = g.quantity.Add(q)
		}
		if p, ok := row.Value(opts.PriceColumn).Decimal(); ok {
			g.priceSum = g.priceSum.Add(p)
			g.prices++
		}
	}

	report := make([]ReportRow, 0, len(order))
	for _, category := range order {
		g := groups[category]
		row := ReportRow{
			Category:      category,
			TotalQuantity: g.quantity,
			RowCount:      g.rows,
		}
		if g.prices > 0 {
			avg := g.priceSum.Div(decimal.NewFromInt(int64(g.prices)))
			row.AveragePrice = &avg
		}
		report = append(report, row)
	}

	return report
}

// ReportColumns is the column order of the exported summary file.
var ReportColumns = []string{"category", "total_quantity", "average_price", "row_count"}

// WriteReportCSV serializes the report: a header line, then one line per
// group. AveragePrice is fixed to two decimals; a group without one gets an
// empty field.
func WriteReportCSV(w io.Writer, rows []ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportColumns); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, r := range rows {
		avg := ""
		if r.AveragePrice != nil {
			avg = r.AveragePrice.StringFixed(2)
		}
		record := []string{r.Category, r.TotalQuantity.String(), avg, strconv.Itoa(r.RowCount)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing group %s: %w", r.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile writes the report to a CSV file at path.
func WriteReportFile(path string, rows []ReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := WriteReportCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
