package collections

import "github.com/Invicton-Labs/go-lists/constraints"

// Range creates a slice of integer values from `start` (inclusive) to
// `end` (exclusive). An empty slice is returned if end <= start.
func Range[T constraints.Integer](start T, end T) []T {
	if end <= start {
		return []T{}
	}
	r := make([]T, end-start)
	for i := start; i < end; i++ {
		r[i-start] = i
	}
	return r
}
