package core

import "github.com/huangsam/pricedash/schema"

// SummarizeProducts describes each product of a filter result, in the same
// order as result.Products.
func SummarizeProducts(result schema.FilterResult) []schema.ProductSummary {
	index := make(map[string]int, len(result.Products))
	summaries := make([]schema.ProductSummary, 0, len(result.Products))
	for _, p := range result.Products {
		index[p] = len(summaries)
		summaries = append(summaries, schema.ProductSummary{Product: p})
	}

	for _, r := range result.Records {
		i, ok := index[r.Product]
		if !ok {
			continue
		}
		s := &summaries[i]
		if s.Observations == 0 {
			s.Category = r.Category
			s.FirstYear, s.LastYear = r.Year, r.Year
		}
		s.Observations++
		s.FirstYear = min(s.FirstYear, r.Year)
		s.LastYear = max(s.LastYear, r.Year)
	}
	return summaries
}
