package operators

import (
	"cmp"

	"github.com/ARM-software/golang-combinators/collection"
	"github.com/ARM-software/golang-combinators/value"
)

// Not returns whether x is falsy. See value.IsTruthy.
func Not[T any](x T) bool { return value.IsFalsy(x) }

// Ternary returns yes if cond is truthy and no otherwise.
func Ternary[T any](cond any, yes, no T) T {
	if value.IsTruthy(cond) {
		return yes
	}
	return no
}

// Min returns the smallest of values. Only ordered types are accepted and ErrEmpty is returned if there is no value.
func Min[T cmp.Ordered](values ...T) (T, error) {
	return collection.ReduceFromFirst(values, func(a, b T) T { return min(a, b) })
}

// Max returns the largest of values. Only ordered types are accepted and ErrEmpty is returned if there is no value.
func Max[T cmp.Ordered](values ...T) (T, error) {
	return collection.ReduceFromFirst(values, func(a, b T) T { return max(a, b) })
}
