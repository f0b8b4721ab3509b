package operators

import (
	"reflect"

	"github.com/spf13/cast"

	"github.com/ARM-software/golang-combinators/functional"
)

// Equal returns a == b.
func Equal[T comparable](a, b T) bool { return a == b }

// StrictEqual returns whether a and b have the same dynamic type and are deeply equal.
func StrictEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// LooseEqual returns whether a and b are equal once coerced to a common type:
//   - strictly equal values are equal. Composite values such as slices, maps and structures
//     are therefore compared by content as StrictEqual does, not by identity;
//   - nil values (nil interfaces, pointers, slices, maps...) are only equal to each other;
//   - two strings are only equal if identical;
//   - otherwise, both values are converted to numbers (booleans count as 0 and 1, numeric
//     strings are parsed) and compared.
func LooseEqual(a, b any) bool {
	if StrictEqual(a, b) {
		return true
	}
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	_, aString := a.(string)
	_, bString := b.(string)
	if aString && bString {
		return false
	}
	x, err := cast.ToFloat64E(a)
	if err != nil {
		return false
	}
	y, err := cast.ToFloat64E(b)
	if err != nil {
		return false
	}
	return x == y
}

// Eq is the default equality used by Is.
var Eq = LooseEqual

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Is returns a predicate testing whether its argument equals x according to eq.
func Is[T any](x T, eq func(T, T) bool) func(T) bool {
	return functional.Bind1(eq, x)
}

// IsEqual returns a predicate testing whether its argument is equal to x.
func IsEqual[T comparable](x T) func(T) bool {
	return Is(x, Equal[T])
}

// IsLooselyEqual returns a predicate testing whether its argument is loosely equal to x.
func IsLooselyEqual(x any) func(any) bool {
	return Is(x, Eq)
}
