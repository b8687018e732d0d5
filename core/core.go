// Package core has the filtering, series and trend logic behind every dashboard view.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/pricedash/internal/contract"
	"github.com/huangsam/pricedash/internal/outwriter"
	"github.com/huangsam/pricedash/schema"
)

// ExecutorFunc defines the function signature for executing the different dashboard views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error

// ExecuteCategories prints every category the dataset offers.
func ExecuteCategories(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	records, err := loadRecords(ctx, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCategories(Categories(records), cfg)
}

// ExecuteProducts prints the products matching the category and query filters.
func ExecuteProducts(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	view, err := GetDashboardResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteProducts(SummarizeProducts(view.Filtered), cfg)
}

// ExecuteCompare prints the price series of every selected product.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	view, err := GetDashboardResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteComparison(view, cfg)
}

// ExecuteChange prints the year-over-year percent change of the main product.
func ExecuteChange(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	view, err := GetDashboardResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteChange(view, cfg)
}

// ExecuteTrend prints the trend classification of the main product.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	view, err := GetDashboardResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTrend(view, cfg)
}

// ExecuteExport writes the selected records of the filtered dataset to a file.
func ExecuteExport(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	view, err := GetDashboardResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteExport(view.Export, cfg)
}

// ExecuteDashboard prints every view in tab order: comparison, change, trend and export.
func ExecuteDashboard(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) error {
	view, err := GetDashboardResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteDashboard(view, cfg)
}

// GetDashboardResults loads the dataset and derives the full view for the configured selection.
func GetDashboardResults(ctx context.Context, cfg *contract.Config, src contract.DatasetSource) (schema.DashboardView, error) {
	records, err := loadRecords(ctx, src)
	if err != nil {
		return schema.DashboardView{}, err
	}

	sel := cfg.SelectionFor(Categories(records))
	if ExceedsBound(sel.Products) && !shouldSuppressHeader(ctx) {
		contract.LogInfo("⚠️  At most %d products can be compared; using %s",
			schema.MaxSelectedProducts, strings.Join(BoundSelection(sel.Products), ", "))
	}
	return BuildDashboard(records, sel), nil
}

// loadRecords reads the dataset once and logs a one-line header.
func loadRecords(ctx context.Context, src contract.DatasetSource) ([]schema.PriceRecord, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %s: %w", src.Describe(), err)
	}
	if !shouldSuppressHeader(ctx) {
		contract.LogInfo("📦 Dataset: %s (%d records)", src.Describe(), len(records))
	}
	return records, nil
}
