package listquery

import "strings"

// Filter returns the subset of items for which keep is true, preserving
// stored order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// MatchFold reports whether q appears as a substring in any of fields,
// comparing both sides lowercased. No tokenization, no fuzzy matching.
func MatchFold(q string, fields ...string) bool {
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
