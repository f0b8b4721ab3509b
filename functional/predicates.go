package functional

import (
	"github.com/ARM-software/golang-combinators/commonerrors"
	"github.com/ARM-software/golang-combinators/value"
)

// Truthy reports whether v counts as true. See value.IsTruthy.
func Truthy(v any) bool {
	return value.IsTruthy(v)
}

// ToPredicate converts a function returning any value into a predicate based on the truthiness of that value.
func ToPredicate[T any](fn func(...T) any) func(...T) bool {
	return func(args ...T) bool {
		return Truthy(fn(args...))
	}
}

// Complement returns a predicate holding whenever pred does not.
func Complement[A any](pred func(A) bool) func(A) bool {
	return func(a A) bool { return !pred(a) }
}

// ComplementN is Complement for predicates of any arity.
func ComplementN[T any](pred func(...T) bool) func(...T) bool {
	return func(args ...T) bool { return !pred(args...) }
}

// AndF returns a predicate which holds when all of fns hold for the same arguments.
// Evaluation stops at the first predicate which does not hold.
func AndF[T any](fns ...func(...T) bool) (func(...T) bool, error) {
	if len(fns) == 0 {
		return nil, commonerrors.New(commonerrors.ErrInvalidArity, "at least one predicate must be provided")
	}
	if err := checkPredicates(fns); err != nil {
		return nil, err
	}
	return func(args ...T) bool {
		for i := range fns {
			if !fns[i](args...) {
				return false
			}
		}
		return true
	}, nil
}

// OrF returns a predicate which holds when any of fns holds for the same arguments.
// Evaluation stops at the first predicate which holds.
func OrF[T any](fns ...func(...T) bool) (func(...T) bool, error) {
	if len(fns) == 0 {
		return nil, commonerrors.New(commonerrors.ErrInvalidArity, "at least one predicate must be provided")
	}
	if err := checkPredicates(fns); err != nil {
		return nil, err
	}
	return func(args ...T) bool {
		for i := range fns {
			if fns[i](args...) {
				return true
			}
		}
		return false
	}, nil
}

func checkPredicates[T any](fns []func(...T) bool) error {
	for i := range fns {
		if fns[i] == nil {
			return commonerrors.UndefinedParameterf("predicate #%v is nil", i)
		}
	}
	return nil
}
