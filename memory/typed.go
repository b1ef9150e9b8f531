package memory

import (
	"golang.org/x/exp/constraints"
)

// NaturalOrder is the Comparator induced by the element type's < and > operators. For
// floating point element types this means NaN compares as neither smaller nor larger than
// anything, so NaN-laden data does not produce a strict total order; callers that need one
// should install their own comparator.
func NaturalOrder[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// NewOrdered creates an empty SegmentedList over an ordered element type with NaturalOrder
// preinstalled as its comparator, covering the primitive specializations (ints, floats,
// strings) without any boxing.
func NewOrdered[T constraints.Ordered](batchSize int, options ...ListOption[T]) (*SegmentedList[T], error) {
	l, err := New[T](batchSize, options...)
	if err != nil {
		return nil, err
	}

	l.compare = NaturalOrder[T]
	return l, nil
}

// NewWithComparator creates an empty SegmentedList over an arbitrary element type, ordered
// by the provided comparator. This is the counterpart of a boxed-object list in the
// original design, minus the boxing.
func NewWithComparator[T any](batchSize int, compare Comparator[T], options ...ListOption[T]) (*SegmentedList[T], error) {
	l, err := New[T](batchSize, options...)
	if err != nil {
		return nil, err
	}

	l.compare = compare
	return l, nil
}

// IntList accumulates 64-bit integer keys or offsets.
type IntList = SegmentedList[int64]

// DoubleList accumulates 64-bit floating point values. See NaturalOrder for how NaN
// interacts with CompareIndices.
type DoubleList = SegmentedList[float64]

// NewIntList creates an empty IntList with the natural numeric ordering.
func NewIntList(batchSize int, options ...ListOption[int64]) (*IntList, error) {
	return NewOrdered[int64](batchSize, options...)
}

// NewDoubleList creates an empty DoubleList with the natural numeric ordering.
func NewDoubleList(batchSize int, options ...ListOption[float64]) (*DoubleList, error) {
	return NewOrdered[float64](batchSize, options...)
}
