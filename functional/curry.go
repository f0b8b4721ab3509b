package functional

import "slices"

// Apply calls fn with args spread as its arguments.
func Apply[T, R any](fn func(...T) R, args []T) R {
	return fn(args...)
}

// Curry returns a function which calls fn with the bound arguments followed by the arguments it receives.
// e.g. `Curry(join, "a", "b")("c", "d") == join("a", "b", "c", "d")`
func Curry[T, R any](fn func(...T) R, bound ...T) func(...T) R {
	prefix := slices.Clone(bound)
	return func(args ...T) R {
		return fn(slices.Concat(prefix, args)...)
	}
}

// CurryL is an alias for Curry.
func CurryL[T, R any](fn func(...T) R, bound ...T) func(...T) R {
	return Curry(fn, bound...)
}

// CurryR is like Curry but the bound arguments are appended after the ones received.
// e.g. `CurryR(join, "c", "d")("a", "b") == join("a", "b", "c", "d")`
func CurryR[T, R any](fn func(...T) R, bound ...T) func(...T) R {
	suffix := slices.Clone(bound)
	return func(args ...T) R {
		return fn(slices.Concat(args, suffix)...)
	}
}

// Bind1 fixes the first argument of a binary function.
func Bind1[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R { return fn(a, b) }
}

// Bind2 fixes the second argument of a binary function.
func Bind2[A, B, R any](fn func(A, B) R, b B) func(A) R {
	return func(a A) R { return fn(a, b) }
}
