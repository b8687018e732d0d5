package core

import "github.com/huangsam/pricedash/schema"

// ExportRecords restricts filtered records to the selected products.
// Record order is preserved.
func ExportRecords(filtered []schema.PriceRecord, selection []string) []schema.PriceRecord {
	out := []schema.PriceRecord{}
	if len(selection) == 0 {
		return out
	}
	selected := toSet(selection)
	for _, r := range filtered {
		if _, ok := selected[r.Product]; ok {
			out = append(out, r)
		}
	}
	return out
}
