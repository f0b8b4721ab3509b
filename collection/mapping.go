package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-combinators/functional"
)

//
// Mapping utilities
//

// MapFunc defines a function that maps a value of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// MapWithErrorFunc defines a mapping function that may return an error.
type MapWithErrorFunc[T1, T2 any] func(T1) (T2, error)

// IdentityMapFunc returns a mapping function that returns its input unchanged.
func IdentityMapFunc[T any]() MapFunc[T, T] {
	return functional.Identity[T]
}

// MapSequence maps each element of s using f and returns a sequence of mapped values.
func MapSequence[T1 any, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// MapSequenceWithError maps each element of s using f, which may return an error.
// Mapping stops if f returns an error or if the consumer declines the yielded value.
func MapSequenceWithError[T1 any, T2 any](s iter.Seq[T1], f MapWithErrorFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			mapped, err := f(v)
			if err != nil || !yield(mapped) {
				return
			}
		}
	}
}

// Map applies f to each element of s and returns a slice with the results.
func Map[T1 any, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	result := make([]T2, 0, len(s))
	return slices.AppendSeq(result, MapSequence(slices.Values(s), f))
}

// MapWithError applies f to each element of s where f may return an error.
// If an error occurs, processing stops and the error is returned.
func MapWithError[T1 any, T2 any](s []T1, f MapWithErrorFunc[T1, T2]) (result []T2, err error) {
	result = make([]T2, len(s))

	for i := range s {
		var subErr error
		result[i], subErr = f(s[i])
		if subErr != nil {
			err = subErr
			return
		}
	}

	return
}

// MapN calls f with one argument from each list, until the shortest list is exhausted, and
// returns the results in order. e.g. `MapN(join, []string{"a", "b"}, []string{"x", "y"}) == []string{"ax", "by"}`
func MapN[T, R any](f func(...T) R, lists ...[]T) []R {
	return Map(Zip(lists...), func(args []T) R {
		return functional.Apply(f, args)
	})
}

// Map2 is like MapN for two lists of different element types.
func Map2[A, B, R any](f func(A, B) R, a []A, b []B) []R {
	return Map(Zip2(a, b), func(p Pair[A, B]) R {
		return f(p.First, p.Second)
	})
}
