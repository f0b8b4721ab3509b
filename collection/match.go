package collection

import "github.com/ARM-software/golang-combinators/functional"

//
// Match utilities
//

func toVariadic[E any](matches []FilterFunc[E]) []func(...E) bool {
	return Map(matches, func(m FilterFunc[E]) func(...E) bool { return unary(m) })
}

// Match returns true if any of the provided match predicates return true for e.
// It returns false when no predicate is provided.
func Match[E any](e E, matches ...FilterFunc[E]) bool {
	or, err := functional.OrF(toVariadic(matches)...)
	if err != nil {
		return false
	}
	return or(e)
}

// MatchAll returns true only if all the provided match predicates return true for e.
// It returns false when no predicate is provided.
func MatchAll[E any](e E, matches ...FilterFunc[E]) bool {
	and, err := functional.AndF(toVariadic(matches)...)
	if err != nil {
		return false
	}
	return and(e)
}
