package collection

import (
	mapset "github.com/deckarep/golang-set/v2"
)

//
// Set operations
//

// Distinct returns the distinct values found in the lists, in the order they are first encountered.
// Called with several lists, it returns their union.
func Distinct[T comparable](lists ...[]T) []T {
	seen := mapset.NewThreadUnsafeSet[T]()
	result := []T{}
	for i := range lists {
		result = Reduce(lists[i], result, func(acc []T, e T) []T {
			if seen.Add(e) {
				acc = append(acc, e)
			}
			return acc
		})
	}
	return result
}

// Intersection returns the distinct values present in every list, in the order of the first list.
// The intersection of no list is empty.
func Intersection[T comparable](lists ...[]T) []T {
	if len(lists) == 0 {
		return []T{}
	}
	others := Map(lists[1:], func(l []T) mapset.Set[T] {
		return mapset.NewThreadUnsafeSet[T](l...)
	})
	return Filter(Distinct(lists[0]), func(e T) bool {
		return AllFunc(others, func(s mapset.Set[T]) bool { return s.Contains(e) })
	})
}
