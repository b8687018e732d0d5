package core

import "github.com/huangsam/pricedash/schema"

// BoundSelection keeps at most schema.MaxSelectedProducts distinct, non-empty
// product names in the order they were requested.
func BoundSelection(requested []string) []string {
	bounded := make([]string, 0, schema.MaxSelectedProducts)
	seen := make(map[string]struct{})
	for _, p := range requested {
		if len(bounded) == schema.MaxSelectedProducts {
			break
		}
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		bounded = append(bounded, p)
	}
	return bounded
}

// ExceedsBound reports whether a request names more distinct products than can be compared.
func ExceedsBound(requested []string) bool {
	seen := make(map[string]struct{})
	for _, p := range requested {
		if p != "" {
			seen[p] = struct{}{}
		}
	}
	return len(seen) > schema.MaxSelectedProducts
}
