// Package schema has models and enumerations for all parts of pricedash.
package schema

// PriceRecord is one observation of the dataset: the price of a product in a given year.
// Records are read-only once loaded.
type PriceRecord struct {
	Category string  `json:"Category"` // Product category, e.g. "Food"
	Product  string  `json:"Product"`  // Product name, e.g. "Rice"
	Year     int     `json:"Year"`     // Observation year
	Price    float64 `json:"Price"`    // Observed price in the dataset currency
}

// Selection captures what the user picked for one interaction.
type Selection struct {
	Categories []string `json:"categories"` // Category set; empty yields no records
	Query      string   `json:"query"`      // Product-name substring; empty matches all
	Products   []string `json:"products"`   // Requested products, main product first
}

// FilterResult holds the records that passed both the category and product filters.
type FilterResult struct {
	Records  []PriceRecord `json:"records"`
	Products []string      `json:"products"` // Distinct matching product names in first-appearance order
}

// DashboardView is the complete derived state for one interaction.
// It is rebuilt from the loaded records every time the selection changes.
type DashboardView struct {
	Categories []string      `json:"categories"` // Every category offered by the dataset
	Selection  Selection     `json:"selection"`  // Selection as requested, after boundary normalization
	Filtered   FilterResult  `json:"filtered"`
	Selected   []string      `json:"selected"` // Bounded product selection
	Series     []TimeSeries  `json:"series"`
	Change     ChangeSeries  `json:"change"`
	Trend      *TrendSummary `json:"trend,omitempty"` // nil when the main product has no observations
	Narrative  string        `json:"narrative,omitempty"`
	Export     []PriceRecord `json:"export"`
}

// MainProduct returns the first selected product, or "" when nothing is selected.
func (v DashboardView) MainProduct() string {
	if len(v.Selected) == 0 {
		return ""
	}
	return v.Selected[0]
}

// HasSelection reports whether at least one product was selected.
func (v DashboardView) HasSelection() bool {
	return len(v.Selected) > 0
}

// ProductSummary describes the observations a filtered dataset holds for one product.
type ProductSummary struct {
	Product      string `json:"product"`
	Category     string `json:"category"` // Category of the first observation
	Observations int    `json:"observations"`
	FirstYear    int    `json:"first_year"`
	LastYear     int    `json:"last_year"`
}
