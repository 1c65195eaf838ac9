// Package services computes the derived data the dashboard and list views
// display: status counts, money totals, and per-role overview figures, all
// over collections that have already been narrowed to the caller's scope.
package services

// CountByStatus partitions a collection into buckets keyed by status. Every
// element lands in exactly one bucket, so the counts always sum to the
// collection size.
func CountByStatus[T any, S comparable](items []T, status func(T) S) map[S]int {
	out := make(map[S]int)
	for _, it := range items {
		out[status(it)]++
	}
	return out
}

// SumWhere adds up the amounts of the elements matching the predicate.
// Amounts are integer cents; an empty collection sums to zero.
func SumWhere[T any](items []T, match func(T) bool, amount func(T) int64) int64 {
	var total int64
	for _, it := range items {
		if match(it) {
			total += amount(it)
		}
	}
	return total
}

// Recent takes the first n elements in collection order. Collections are
// kept in insertion order, so this is the oldest-first prefix.
func Recent[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
