package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
)

// barGlyph is the cell used to draw change bars.
const barGlyph = "█"

// PrintChange outputs the percent change of the main product, dispatching based on the output format configured.
func PrintChange(view schema.DashboardView, cfg *contract.Config) error {
	_, fmtPercent := createFormatters(cfg.Precision)

	var write func(io.Writer) error
	switch cfg.Output {
	case schema.JSONOut:
		write = func(w io.Writer) error { return writeJSON(w, view.Change) }
	case schema.CSVOut:
		write = func(w io.Writer) error { return writeCSVChange(w, view.Change) }
	default:
		write = func(w io.Writer) error { return writeChangeChart(w, view, cfg, fmtPercent) }
	}
	if err := writeWithFile(cfg.OutputFile, write, "Wrote price change"); err != nil {
		return fmt.Errorf("error writing change output: %w", err)
	}
	return nil
}

// writeCSVChange writes one row per change point. Missing values are left empty.
func writeCSVChange(w io.Writer, change schema.ChangeSeries) error {
	header := []string{"product", "year", "percent_change"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range change.Points {
			if err := cw.Write([]string{change.Product, strconv.Itoa(p.Year), formatCSVPercent(p.Percent)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeChangeChart draws a horizontal bar per year, scaled to the largest change.
func writeChangeChart(w io.Writer, view schema.DashboardView, cfg *contract.Config, fmtPercent func(float64) string) error {
	if !view.HasSelection() {
		return writePlaceholder(w, cfg)
	}

	change := view.Change
	if _, err := fmt.Fprintf(w, "Year-over-year price change: %s\n", view.MainProduct()); err != nil {
		return err
	}
	if len(change.Points) == 0 {
		muted := colorizer(cfg, contract.MutedColor)
		_, err := fmt.Fprintln(w, muted("At least two observations are needed to compute a change."))
		return err
	}

	maxAbs := 0.0
	labelWidth := 0
	for _, p := range change.Points {
		if !p.IsMissing() {
			maxAbs = math.Max(maxAbs, math.Abs(p.Percent))
		}
		labelWidth = max(labelWidth, len(fmtPercent(p.Percent)))
	}

	barWidth := getBarWidth(cfg)
	increase := colorizer(cfg, contract.IncreaseColor)
	decrease := colorizer(cfg, contract.DecreaseColor)
	muted := colorizer(cfg, contract.MutedColor)

	for _, p := range change.Points {
		label := fmt.Sprintf("%*s", labelWidth, fmtPercent(p.Percent))
		var bar string
		switch {
		case p.IsMissing():
			label = muted(label)
		case p.Percent > 0:
			bar = increase(strings.Repeat(barGlyph, barLength(p.Percent, maxAbs, barWidth)))
		case p.Percent < 0:
			bar = decrease(strings.Repeat(barGlyph, barLength(p.Percent, maxAbs, barWidth)))
		}
		if _, err := fmt.Fprintf(w, "%d │ %s %s\n", p.Year, label, bar); err != nil {
			return err
		}
	}
	return nil
}

// barLength scales a change to the chart width. Any non-zero change gets at least one cell.
func barLength(percent, maxAbs float64, width int) int {
	if maxAbs == 0 || percent == 0 {
		return 0
	}
	n := int(math.Round(math.Abs(percent) / maxAbs * float64(width)))
	return max(n, 1)
}

// isMissing reports whether a computed value is the NaN sentinel (or otherwise not finite).
func isMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
