package memory

import (
	"github.com/fannyfur/Cubert/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// DefaultBatchSize is the batch size used by lists whose consumer did not choose one.
const DefaultBatchSize = 1 << 10

// List is the representation-independent surface of a segmented list. It manages an ordered
// sequence of fixed-size batches, allowing capacity to be provisioned on demand, trimmed back
// down, and queried, without exposing the concrete element representation. Consumers that
// accumulate several typed lists side by side (a sort pipeline holding one list per column,
// for example) can hold them uniformly through this interface.
//
// Lists are not safe for concurrent use. Two goroutines mutating the same list, or one
// iterating while another mutates, produce undefined state. This is a documented constraint
// of the design, not a defect: the whole point of the structure is accumulating millions of
// elements with no per-element or per-operation overhead.
type List interface {
	// Size returns the number of logically valid elements in the list. It is always at most
	// Capacity.
	Size() int
	// Capacity returns the total number of element slots backed by allocated batches. It is
	// always a multiple of BatchSize.
	Capacity() int
	// BatchSize returns the fixed per-batch slot count chosen at construction.
	BatchSize() int

	// Clear discards every batch and resets Size to 0. Discarded storage is handed to the
	// list's recycler when one is attached, and otherwise becomes garbage.
	Clear()
	// Reset is shorthand for ResetTo with the list's batch size.
	Reset()
	// ResetTo shrinks the list to the minimum prefix of existing batches whose combined
	// capacity covers length elements, rewraps that prefix as fresh value-cleared batches,
	// and then provisions any additional batches needed to cover length. Afterward Size is 0
	// and Capacity is at least length. The retained prefix reuses its prior storage rather
	// than allocating, which is the load-bearing optimization for callers that run repeated
	// fill/drain cycles of similar magnitude.
	ResetTo(length int)
	// EnsureCapacity provisions batches until Capacity covers length elements. Calling it
	// with a length the current capacity already covers leaves the batch sequence untouched.
	// Existing batches are never removed or reordered.
	EnsureCapacity(length int)

	// CompareIndices returns a negative, zero, or positive value as the element at index i1
	// orders before, the same as, or after the element at index i2. Ordering comes from the
	// list's comparator; ordered variants preinstall the natural ordering of their element
	// type. CompareIndices panics if the list has no comparator installed.
	CompareIndices(i1, i2 int) int

	// Validate performs internal consistency checks on the batch bookkeeping. When the
	// implementation is functioning correctly it should not be possible for this method to
	// return an error, but it may assist in diagnosing issues.
	Validate() error
	// AddStatistics sums this list's storage statistics into the statistics currently
	// present in the provided memutils.ListStatistics object.
	AddStatistics(stats *memutils.ListStatistics)
	// PrintStats populates a json object with information about this list's storage.
	PrintStats(writer *jwriter.Writer)
}

// StatsString renders a list's storage statistics as a JSON string. Diagnostics only.
func StatsString(l List) string {
	writer := jwriter.NewWriter()
	l.PrintStats(&writer)
	return string(writer.Bytes())
}
