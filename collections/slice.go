package collections

import (
	"sort"

	"github.com/Invicton-Labs/go-lists/constraints"
)

// CopySlice will create a copy of the given slice.
func CopySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// SortSliceAscendingInPlace will sort the given slice in ascending order, leaving
// elements with equal values where they are (stable sort).
func SortSliceAscendingInPlace[SliceType constraints.Ordered](in []SliceType) {
	if in == nil {
		return
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i] < in[j] })
}

// SliceEqual checks whether two slices hold the same elements in the same order.
// A nil slice and an empty slice are considered equal.
func SliceEqual[SliceType comparable](in1 []SliceType, in2 []SliceType) bool {
	if len(in1) != len(in2) {
		return false
	}
	for i := range in1 {
		if in1[i] != in2[i] {
			return false
		}
	}
	return true
}
