package core

import (
	"math"

	"github.com/huangsam/pricedash/schema"
)

// PercentChange computes the year-over-year percent change of a series.
// The first observation has no predecessor and is skipped, so the result has
// len(ts.Points)-1 points (or none). A zero previous price yields NaN for that
// point only; the rest of the series is still computed.
func PercentChange(ts schema.TimeSeries) schema.ChangeSeries {
	change := schema.ChangeSeries{Product: ts.Product, Points: []schema.ChangePoint{}}
	for i := 1; i < len(ts.Points); i++ {
		prev, cur := ts.Points[i-1], ts.Points[i]
		change.Points = append(change.Points, schema.ChangePoint{
			Year:    cur.Year,
			Percent: percentDelta(prev.Price, cur.Price),
		})
	}
	return change
}

// percentDelta returns (cur-prev)/prev*100, or NaN when prev is zero.
func percentDelta(prev, cur float64) float64 {
	if prev == 0 {
		return math.NaN()
	}
	return (cur - prev) / prev * 100
}
