package functional

// Constant returns a function which always returns value.
func Constant[T any](value T) func() T {
	return func() T { return value }
}

// ConstantFor is like Constant but the returned function accepts (and ignores) an argument so that
// it can be used wherever a func(A) T is expected.
func ConstantFor[A, T any](value T) func(A) T {
	return func(A) T { return value }
}

// Always is a predicate which always holds.
func Always[A any](A) bool { return true }

// Never is a predicate which never holds.
func Never[A any](A) bool { return false }

// Identity returns its argument.
func Identity[T any](x T) T { return x }
