// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCategories prints the dataset categories using the configured output format.
func (ow *OutWriter) WriteCategories(categories []string, cfg *contract.Config) error {
	return PrintCategories(categories, cfg)
}

// WriteProducts prints the matching products using the configured output format.
func (ow *OutWriter) WriteProducts(products []schema.ProductSummary, cfg *contract.Config) error {
	return PrintProducts(products, cfg)
}

// WriteComparison prints the price series of the selected products.
func (ow *OutWriter) WriteComparison(view schema.DashboardView, cfg *contract.Config) error {
	return PrintComparison(view, cfg)
}

// WriteChange prints the percent change chart of the main product.
func (ow *OutWriter) WriteChange(view schema.DashboardView, cfg *contract.Config) error {
	return PrintChange(view, cfg)
}

// WriteTrend prints the trend classification of the main product.
func (ow *OutWriter) WriteTrend(view schema.DashboardView, cfg *contract.Config) error {
	return PrintTrend(view, cfg)
}

// WriteExport writes the exported records to a file.
func (ow *OutWriter) WriteExport(records []schema.PriceRecord, cfg *contract.Config) error {
	return PrintExport(records, cfg)
}

// WriteDashboard prints every view of the dashboard.
func (ow *OutWriter) WriteDashboard(view schema.DashboardView, cfg *contract.Config) error {
	return PrintDashboard(view, cfg)
}

// WriteDatasetStatus prints summary information about a stored dataset.
func (ow *OutWriter) WriteDatasetStatus(status schema.DatasetStatus, cfg *contract.Config) error {
	return PrintDatasetStatus(status, cfg)
}
