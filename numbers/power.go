package numbers

import (
	"github.com/Invicton-Labs/go-lists/constraints"
)

// PowInt raises base to a non-negative integer exponent by repeated
// squaring. It panics on a negative exponent.
func PowInt[BaseType constraints.Integer, ExpType constraints.Integer](base BaseType, exp ExpType) BaseType {
	if exp < 0 {
		panic("PowInt cannot be used with negative exponents")
	}
	result := BaseType(1)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result
}

// IsPowerOfTwo reports whether v is a positive integer power of two
// (1, 2, 4, 8, ...).
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}
