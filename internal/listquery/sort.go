package listquery

import (
	"sort"
	"time"
)

// Sort orders a copy of items by less, leaving the input untouched so stored
// order survives for callers that reuse the collection.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Newest orders by creation time descending. Ties break on identifier
// ascending so page boundaries stay deterministic.
func Newest[T any](created func(T) time.Time, id func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		ta, tb := created(a), created(b)
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return id(a) < id(b)
	}
}

// Oldest orders by creation time ascending, identifier ascending on ties.
func Oldest[T any](created func(T) time.Time, id func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		ta, tb := created(a), created(b)
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return id(a) < id(b)
	}
}

// Popular orders by a popularity counter descending, identifier ascending on
// ties.
func Popular[T any](count func(T) int64, id func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		ca, cb := count(a), count(b)
		if ca != cb {
			return ca > cb
		}
		return id(a) < id(b)
	}
}
