package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
)

// PrintDashboard outputs every view of the dashboard, dispatching based on the output format configured.
// CSV output holds the export rows, since the other views are derived from them.
func PrintDashboard(view schema.DashboardView, cfg *contract.Config) error {
	fmtFloat, fmtPercent := createFormatters(cfg.Precision)

	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSON(w, view) }
	case schema.CSVOut:
		write = func(w io.Writer) error { return WriteExportCSV(w, view.Export) }
	default:
		write = func(w io.Writer) error { return writeDashboardText(w, view, cfg, fmtFloat, fmtPercent) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote dashboard"); err != nil {
		return fmt.Errorf("error writing dashboard output: %w", err)
	}
	return nil
}

// writeDashboardText prints the selection summary followed by each tab in order.
func writeDashboardText(w io.Writer, view schema.DashboardView, cfg *contract.Config, fmtFloat, fmtPercent func(float64) string) error {
	summary := fmt.Sprintf("Categories: %s | Query: %q | Matching products: %d",
		strings.Join(view.Selection.Categories, ", "), view.Selection.Query, len(view.Filtered.Products))
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return err
	}
	if !view.HasSelection() {
		return writePlaceholder(w, cfg)
	}
	if _, err := fmt.Fprintf(w, "Selected: %s\n", strings.Join(view.Selected, ", ")); err != nil {
		return err
	}

	sections := []struct {
		title string
		write func() error
	}{
		{"Price comparison", func() error { return writeComparisonTable(w, view, cfg, fmtFloat) }},
		{"Price change", func() error { return writeChangeChart(w, view, cfg, fmtPercent) }},
		{"Trend", func() error { return writeTrendText(w, view, cfg, fmtFloat) }},
		{"Export", func() error { return writeExportSummary(w, view) }},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "\n── %s ──\n", s.title); err != nil {
			return err
		}
		if err := s.write(); err != nil {
			return err
		}
	}
	return nil
}

// writeExportSummary describes what an export of the current selection would contain.
func writeExportSummary(w io.Writer, view schema.DashboardView) error {
	_, err := fmt.Fprintf(w, "%d records ready as %s (%s). Run 'pricedash export' to save them.\n",
		len(view.Export), schema.DefaultExportFileName, schema.ExportContentType)
	return err
}
