package core

import (
	"fmt"
	"math"

	"github.com/huangsam/pricedash/schema"
	"github.com/shopspring/decimal"
)

// Classify summarizes the net movement between the first and last observation.
// Intermediate points are ignored. It returns false for an empty series
// or when either end is not a finite price.
func Classify(ts schema.TimeSeries) (schema.TrendSummary, bool) {
	if ts.IsEmpty() {
		return schema.TrendSummary{}, false
	}

	first := ts.Points[0]
	last := ts.Points[len(ts.Points)-1]
	if !isFinite(first.Price) || !isFinite(last.Price) {
		return schema.TrendSummary{}, false
	}

	// Decimal subtraction keeps deltas like 1100.1-1000 exact.
	delta := decimal.NewFromFloat(last.Price).Sub(decimal.NewFromFloat(first.Price))

	return schema.TrendSummary{
		Product: ts.Product,
		First:   first,
		Last:    last,
		Delta:   delta.InexactFloat64(),
		Label:   schema.LabelForDelta(delta.Sign()),
	}, true
}

// Narrative returns the one-line economic reading of a trend.
func Narrative(s schema.TrendSummary) string {
	amount := formatAmount(s.AbsDelta())
	switch s.Label {
	case schema.IncreaseTrend:
		return fmt.Sprintf("%s rose by %s in total between %d and %d. Inflation or higher raw-material costs may be behind it.",
			s.Product, amount, s.First.Year, s.Last.Year)
	case schema.DecreaseTrend:
		return fmt.Sprintf("%s fell by %s in total between %d and %d. Growing supply or weaker demand may be the cause.",
			s.Product, amount, s.First.Year, s.Last.Year)
	default:
		return fmt.Sprintf("%s did not change in price, which points to a stable market.", s.Product)
	}
}

// formatAmount prints a price delta without trailing zeros.
func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
