package numbers

import "github.com/Invicton-Labs/go-lists/constraints"

// IsPrime checks whether n is prime by trial division with odd divisors
// up to the square root of n.
func IsPrime[T constraints.Integer](n T) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := T(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
