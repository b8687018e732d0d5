package schema

import (
	"encoding/json"
	"math"
)

// SeriesPoint is a single (year, price) observation of a product.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

// TimeSeries is the year-ordered price trajectory of one product.
type TimeSeries struct {
	Product string        `json:"product"`
	Points  []SeriesPoint `json:"points"`
}

// Len returns the number of observations.
func (ts TimeSeries) Len() int {
	return len(ts.Points)
}

// IsEmpty reports whether the series has no observations.
func (ts TimeSeries) IsEmpty() bool {
	return len(ts.Points) == 0
}

// ChangePoint is the percent change of a product's price against the previous observation.
// Percent is NaN when the previous price was zero.
type ChangePoint struct {
	Year    int     `json:"year"`
	Percent float64 `json:"percent"`
}

// IsMissing reports whether the change could not be computed for this point.
func (p ChangePoint) IsMissing() bool {
	return math.IsNaN(p.Percent) || math.IsInf(p.Percent, 0)
}

// MarshalJSON encodes a missing percent as null, since JSON has no NaN.
func (p ChangePoint) MarshalJSON() ([]byte, error) {
	var percent *float64
	if !p.IsMissing() {
		percent = &p.Percent
	}
	return json.Marshal(struct {
		Year    int      `json:"year"`
		Percent *float64 `json:"percent"`
	}{p.Year, percent})
}

// UnmarshalJSON decodes a null percent back into the NaN sentinel.
func (p *ChangePoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Year    int      `json:"year"`
		Percent *float64 `json:"percent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Year = raw.Year
	if raw.Percent == nil {
		p.Percent = math.NaN()
	} else {
		p.Percent = *raw.Percent
	}
	return nil
}

// ChangeSeries is the year-over-year percent change of one product.
// It has one point fewer than the series it was derived from.
type ChangeSeries struct {
	Product string        `json:"product"`
	Points  []ChangePoint `json:"points"`
}

// TrendSummary is the net movement between the first and last observation of a series.
type TrendSummary struct {
	Product string      `json:"product"`
	First   SeriesPoint `json:"first"`
	Last    SeriesPoint `json:"last"`
	Delta   float64     `json:"delta"`
	Label   TrendLabel  `json:"label"`
}
