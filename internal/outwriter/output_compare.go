package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComparison outputs the selected price series, dispatching based on the output format configured.
func PrintComparison(view schema.DashboardView, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSON(w, view.Series) }
	case schema.CSVOut:
		write = func(w io.Writer) error { return writeCSVComparison(w, view.Series) }
	default:
		write = func(w io.Writer) error { return writeComparisonTable(w, view, cfg, fmtFloat) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote price comparison"); err != nil {
		return fmt.Errorf("error writing comparison output: %w", err)
	}
	return nil
}

// writeCSVComparison writes the series in long form: one row per observation.
func writeCSVComparison(w io.Writer, series []schema.TimeSeries) error {
	header := []string{"product", "year", "price"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ts := range series {
			for _, p := range ts.Points {
				if err := cw.Write([]string{ts.Product, strconv.Itoa(p.Year), formatPrice(p.Price)}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeComparisonTable prints the series side by side with one row per year.
// Products without observations get no column.
func writeComparisonTable(w io.Writer, view schema.DashboardView, cfg *contract.Config, fmtFloat func(float64) string) error {
	if !view.HasSelection() {
		return writePlaceholder(w, cfg)
	}

	var drawn []schema.TimeSeries
	var empty []string
	for _, ts := range view.Series {
		if ts.IsEmpty() {
			empty = append(empty, ts.Product)
		} else {
			drawn = append(drawn, ts)
		}
	}

	if len(drawn) > 0 {
		if err := renderComparisonPivot(w, drawn, cfg, fmtFloat); err != nil {
			return err
		}
	}
	if len(empty) > 0 {
		muted := colorizer(cfg, contract.MutedColor)
		if _, err := fmt.Fprintln(w, muted("No price observations for "+strings.Join(empty, ", "))); err != nil {
			return err
		}
	}
	return nil
}

// renderComparisonPivot renders the year-by-product table.
func renderComparisonPivot(w io.Writer, series []schema.TimeSeries, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	// --- 1. Define Headers ---
	maxWidth := getMaxLabelWidth(cfg, len(series))
	headers := []string{"Year"}
	for _, ts := range series {
		headers = append(headers, contract.TruncateText(ts.Product, maxWidth))
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	years := unionYears(series)
	var data [][]string
	for _, year := range years {
		row := []string{strconv.Itoa(year)}
		for _, ts := range series {
			row = append(row, formatYearCell(ts, year, fmtFloat))
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Comparing %d products over %d years\n", len(series), len(years))
	return err
}

// unionYears returns every year observed by any series, ascending.
func unionYears(series []schema.TimeSeries) []int {
	var years []int
	for _, ts := range series {
		for _, p := range ts.Points {
			years = append(years, p.Year)
		}
	}
	slices.Sort(years)
	return slices.Compact(years)
}

// formatYearCell prints the prices a series holds for one year.
// Duplicate observations for the same year are all shown, in series order.
func formatYearCell(ts schema.TimeSeries, year int, fmtFloat func(float64) string) string {
	var prices []string
	for _, p := range ts.Points {
		if p.Year == year {
			prices = append(prices, fmtFloat(p.Price))
		}
	}
	if len(prices) == 0 {
		return "-"
	}
	return strings.Join(prices, " / ")
}
