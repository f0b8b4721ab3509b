package collection

import (
	"cmp"
	"slices"
)

//
// Ordering utilities
//

// Reverse returns a copy of s in reverse order.
func Reverse[S ~[]E, E any](s S) S {
	reversed := slices.Clone(s)
	slices.Reverse(reversed)
	return reversed
}

// Sort returns a copy of s sorted according to compare. The sort is stable.
func Sort[S ~[]E, E any](s S, compare func(a, b E) int) S {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, compare)
	return sorted
}

// SortOrdered returns a copy of s sorted in ascending order.
func SortOrdered[S ~[]E, E cmp.Ordered](s S) S {
	return Sort(s, cmp.Compare[E])
}
