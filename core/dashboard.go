package core

import "github.com/huangsam/pricedash/schema"

// BuildDashboard runs the whole pipeline for one interaction: filter, bound the
// product selection, then derive every view from the filtered records.
// Nothing is cached; identical inputs always give identical views.
func BuildDashboard(records []schema.PriceRecord, sel schema.Selection) schema.DashboardView {
	filtered := Filter(records, sel.Categories, sel.Query)
	selected := BoundSelection(sel.Products)
	series := BuildSeries(filtered.Records, selected)

	view := schema.DashboardView{
		Categories: Categories(records),
		Selection:  sel,
		Filtered:   filtered,
		Selected:   selected,
		Series:     series,
		Change:     schema.ChangeSeries{Points: []schema.ChangePoint{}},
		Export:     ExportRecords(filtered.Records, selected),
	}

	if mainProduct := view.MainProduct(); mainProduct != "" {
		mainSeries := SeriesFor(series, mainProduct)
		view.Change = PercentChange(mainSeries)
		if summary, ok := Classify(mainSeries); ok {
			view.Trend = &summary
			view.Narrative = Narrative(summary)
		}
	}
	return view
}
