package core

import (
	"strings"

	"github.com/huangsam/pricedash/schema"
)

// Filter narrows records to the selected categories and to products whose name
// contains query. An empty category selection yields an empty result, while an
// empty query keeps every product. Matching is case-sensitive.
func Filter(records []schema.PriceRecord, categories []string, query string) schema.FilterResult {
	result := schema.FilterResult{
		Records:  []schema.PriceRecord{},
		Products: []string{},
	}
	if len(categories) == 0 {
		return result
	}

	allowed := toSet(categories)
	seen := make(map[string]struct{})
	for _, r := range records {
		if _, ok := allowed[r.Category]; !ok {
			continue
		}
		if query != "" && !strings.Contains(r.Product, query) {
			continue
		}
		result.Records = append(result.Records, r)
		if _, ok := seen[r.Product]; !ok {
			seen[r.Product] = struct{}{}
			result.Products = append(result.Products, r.Product)
		}
	}
	return result
}

// Categories returns the distinct categories in order of first appearance.
func Categories(records []schema.PriceRecord) []string {
	return distinct(records, func(r schema.PriceRecord) string { return r.Category })
}

// Products returns the distinct product names in order of first appearance.
func Products(records []schema.PriceRecord) []string {
	return distinct(records, func(r schema.PriceRecord) string { return r.Product })
}

// distinct collects unique keys preserving first-seen order.
func distinct(records []schema.PriceRecord, key func(schema.PriceRecord) string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// toSet builds a membership set from a list of names.
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
