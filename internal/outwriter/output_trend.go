package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
)

// trendOutput is the JSON shape of the trend view.
type trendOutput struct {
	*schema.TrendSummary
	Narrative string `json:"narrative"`
}

// PrintTrend outputs the trend of the main product, dispatching based on the output format configured.
func PrintTrend(view schema.DashboardView, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSONTrend(w, view) }
	case schema.CSVOut:
		write = func(w io.Writer) error { return writeCSVTrend(w, view) }
	default:
		write = func(w io.Writer) error { return writeTrendText(w, view, cfg, fmtFloat) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote price trend"); err != nil {
		return fmt.Errorf("error writing trend output: %w", err)
	}
	return nil
}

// writeJSONTrend writes the trend summary with its narrative, or null when there is none.
func writeJSONTrend(w io.Writer, view schema.DashboardView) error {
	if view.Trend == nil {
		return writeJSON(w, nil)
	}
	return writeJSON(w, trendOutput{TrendSummary: view.Trend, Narrative: view.Narrative})
}

// writeCSVTrend writes the trend summary as a single row. No row is written without a trend.
func writeCSVTrend(w io.Writer, view schema.DashboardView) error {
	header := []string{"product", "first_year", "first_price", "last_year", "last_price", "delta", "label", "narrative"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		t := view.Trend
		if t == nil {
			return nil
		}
		return cw.Write([]string{
			t.Product,
			strconv.Itoa(t.First.Year),
			formatPrice(t.First.Price),
			strconv.Itoa(t.Last.Year),
			formatPrice(t.Last.Price),
			formatPrice(t.Delta),
			string(t.Label),
			view.Narrative,
		})
	})
}

// writeTrendText prints the colored label, the first and last observation, and the narrative.
func writeTrendText(w io.Writer, view schema.DashboardView, cfg *contract.Config, fmtFloat func(float64) string) error {
	if !view.HasSelection() {
		return writePlaceholder(w, cfg)
	}
	t := view.Trend
	if t == nil {
		muted := colorizer(cfg, contract.MutedColor)
		_, err := fmt.Fprintln(w, muted("No price observations for "+view.MainProduct()))
		return err
	}

	paint := colorizer(cfg, contract.TrendColor(t.Label))
	lines := []string{
		fmt.Sprintf("Trend: %s %s", t.Product, paint(trendArrow(t.Label)+" "+t.Label.DisplayLabel())),
		fmt.Sprintf("%d: %s → %d: %s (%s)",
			t.First.Year, fmtFloat(t.First.Price), t.Last.Year, fmtFloat(t.Last.Price), paint(signedFloat(t.Delta, fmtFloat))),
		view.Narrative,
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// trendArrow returns the marker drawn next to a trend label.
func trendArrow(label schema.TrendLabel) string {
	switch label {
	case schema.IncreaseTrend:
		return "▲"
	case schema.DecreaseTrend:
		return "▼"
	default:
		return "■"
	}
}

// signedFloat formats a delta with an explicit plus sign for positive values.
func signedFloat(v float64, fmtFloat func(float64) string) string {
	if v > 0 {
		return "+" + fmtFloat(v)
	}
	return fmtFloat(v)
}
