package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Integer interface {
	~int | ~int32 | ~int64
}

func CheckPositive[T Integer](number T, name string) error {
	if number <= 0 {
		return cerrors.Wrapf(NonPositiveBatchSizeError, "%s is %d", name, number)
	}
	return nil
}

func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return cerrors.Wrapf(IndexOutOfRangeError, "index is %d, list size is %d", index, size)
	}
	return nil
}

// BatchesForLength returns the number of fixed-size batches whose combined capacity covers
// length elements.
func BatchesForLength(length, batchSize int) int {
	return (length + batchSize - 1) / batchSize
}
