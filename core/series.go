package core

import (
	"sort"

	"github.com/huangsam/pricedash/schema"
)

// BuildSeries returns one time series per selected product, in selection order.
// Each series is stable-sorted by year, so records sharing a year keep their
// original relative order. A product with no records gets an empty series.
func BuildSeries(records []schema.PriceRecord, selection []string) []schema.TimeSeries {
	series := make([]schema.TimeSeries, 0, len(selection))
	for _, product := range selection {
		series = append(series, buildProductSeries(records, product))
	}
	return series
}

// SeriesFor looks up the series of a product, returning an empty series when absent.
func SeriesFor(series []schema.TimeSeries, product string) schema.TimeSeries {
	for _, ts := range series {
		if ts.Product == product {
			return ts
		}
	}
	return schema.TimeSeries{Product: product, Points: []schema.SeriesPoint{}}
}

// buildProductSeries extracts and orders the observations of a single product.
func buildProductSeries(records []schema.PriceRecord, product string) schema.TimeSeries {
	points := []schema.SeriesPoint{}
	for _, r := range records {
		if r.Product == product {
			points = append(points, schema.SeriesPoint{Year: r.Year, Price: r.Price})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})
	return schema.TimeSeries{Product: product, Points: points}
}
