package memutils

import "github.com/pkg/errors"

// DefaultValueLockedError is the error returned when a list's default fill value is changed
// after at least one batch has already been allocated
var DefaultValueLockedError error = errors.New("default value must be set before any batch is allocated")

// NonPositiveBatchSizeError is the error returned when a list is constructed with a batch size
// of zero or less
var NonPositiveBatchSizeError error = errors.New("batch size must be a positive integer")

// IndexOutOfRangeError is the error returned from checked accessors when the requested index
// is outside the live portion of the list
var IndexOutOfRangeError error = errors.New("index is outside the live portion of the list")

// ConcurrentModificationError is the error surfaced by iterators when the underlying list was
// mutated after the iterator was created
var ConcurrentModificationError error = errors.New("list was modified during iteration")
