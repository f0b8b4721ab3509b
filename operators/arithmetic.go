package operators

import (
	"math"

	"github.com/ARM-software/golang-combinators/collection"
	"github.com/ARM-software/golang-combinators/safecast"
)

// Number is the set of types arithmetic operators accept.
type Number interface {
	safecast.INumber
}

// Neg returns -x.
func Neg[N Number](x N) N { return -x }

// Add returns a + b.
func Add[N Number](a, b N) N { return a + b }

// Sub returns a - b.
func Sub[N Number](a, b N) N { return a - b }

// Mul returns a * b.
func Mul[N Number](a, b N) N { return a * b }

// Div returns a / b. As for the native operator, an integer division by zero panics.
func Div[N Number](a, b N) N { return a / b }

// Concat returns the concatenation of a and b.
func Concat(a, b string) string { return a + b }

// Modulo returns the remainder of a divided by b, with the sign of b: `Modulo(-1, 3) == 2`.
// As for the native operator, an integer modulo by zero panics.
func Modulo[N Number](a, b N) N {
	switch {
	case safecast.IsFloat[N]():
		x, y := float64(a), float64(b)
		r := math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return N(r)
	case safecast.IsSigned[N]():
		x, y := int64(a), int64(b)
		// the remainder is strictly smaller than y in magnitude so adding y cannot overflow.
		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return N(r)
	default:
		return N(uint64(a) % uint64(b))
	}
}

// AddN returns the sum of values. ErrEmpty is returned if there is no value.
func AddN[N Number](values ...N) (N, error) {
	return collection.ReduceFromFirst(values, Add[N])
}

// SubN subtracts the following values from the first one.
func SubN[N Number](values ...N) (N, error) {
	return collection.ReduceFromFirst(values, Sub[N])
}

// MulN returns the product of values.
func MulN[N Number](values ...N) (N, error) {
	return collection.ReduceFromFirst(values, Mul[N])
}

// DivN divides the first value by the following ones, from left to right.
func DivN[N Number](values ...N) (N, error) {
	return collection.ReduceFromFirst(values, Div[N])
}

// ModuloN applies Modulo from left to right.
func ModuloN[N Number](values ...N) (N, error) {
	return collection.ReduceFromFirst(values, Modulo[N])
}

// ConcatN concatenates strings. ErrEmpty is returned if there is none.
func ConcatN(values ...string) (string, error) {
	return collection.ReduceFromFirst(values, Concat)
}
