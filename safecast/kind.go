package safecast

// IsFloat returns whether the number type N is a floating point type.
func IsFloat[N INumber]() bool {
	var half N = 1
	half /= 2
	return half != 0
}

// IsSigned returns whether the number type N can hold negative values.
func IsSigned[N INumber]() bool {
	var zero N
	return zero-1 < zero
}
