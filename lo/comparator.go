package lo

import (
	"bytes"

	"github.com/iotaledger/dll/constraints"
)

// Comparator is a generic comparator for two values. It returns 0 if the two values are equal, -1 if the first value is
// smaller and 1 if the first value is larger.
func Comparator[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IntComparator compares two ints in ascending order.
func IntComparator(a, b int) int {
	return Comparator(a, b)
}

// BytesComparator compares two byte slices lexicographically.
func BytesComparator(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareWith returns a comparator for types that know how to compare themselves.
func CompareWith[T constraints.Comparable[T]]() func(a, b T) int {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// ReverseComparator inverts the order established by the given comparator.
func ReverseComparator[T any](comparator func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return comparator(b, a)
	}
}
