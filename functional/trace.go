package functional

import "github.com/go-logr/logr"

// Keys under which Traced and TracedPredicate log a call.
const (
	// KeyArguments is the key of the arguments a function was called with.
	KeyArguments = "arguments"
	// KeyResult is the key of the value the function returned.
	KeyResult = "result"
)

// Traced wraps fn so that every call is logged, with its arguments and result, at verbosity level 1 of logger.
// name is appended to the logger name.
func Traced[T, R any](logger logr.Logger, name string, fn func(...T) R) func(...T) R {
	tracer := logger.WithName(name)
	return func(args ...T) R {
		result := fn(args...)
		tracer.V(1).Info("call", KeyArguments, args, KeyResult, result)
		return result
	}
}

// TracedPredicate is like Traced for single argument predicates.
func TracedPredicate[A any](logger logr.Logger, name string, pred func(A) bool) func(A) bool {
	tracer := logger.WithName(name)
	return func(a A) bool {
		result := pred(a)
		tracer.V(1).Info("call", KeyArguments, []A{a}, KeyResult, result)
		return result
	}
}
