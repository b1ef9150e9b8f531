package memory

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/fannyfur/Cubert/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"
)

// Comparator provides a strict three-way ordering over element values: negative when a
// orders before b, zero when they order the same, positive when a orders after b.
type Comparator[T any] func(a, b T) int

// SegmentedList is an append-only growable list backed by an ordered sequence of fixed-size
// batches rather than one contiguous slice. Growth allocates a single new batch at a time,
// so accumulating millions of elements never copies existing data and never asks the
// allocator for one giant block. Element storage is strongly typed through the type
// parameter, so primitive element types are stored packed with no boxing.
//
// The zero value is not usable; construct lists with New, NewOrdered, or NewWithComparator.
//
// SegmentedList is not safe for concurrent use. See List for the full contract.
type SegmentedList[T any] struct {
	batches   [][]T
	batchSize int
	size      int

	defaultValue T
	defaultSet   bool
	compare      Comparator[T]

	recycler *Recycler[T]
	observer AllocationObserver

	// generation is bumped by every mutating operation so that iterators can fail fast
	generation uint64

	batchesAllocated int
	batchesReused    int
}

var _ List = (*SegmentedList[int64])(nil)
var _ memutils.Validatable = (*SegmentedList[int64])(nil)

// ListOption is a constructor option for SegmentedList.
type ListOption[T any] func(l *SegmentedList[T])

// WithRecycler attaches a free-list that receives the list's discarded batches and is
// consulted before fresh storage is allocated. The recycler must only be shared between
// lists used from the same goroutine.
func WithRecycler[T any](recycler *Recycler[T]) ListOption[T] {
	return func(l *SegmentedList[T]) {
		l.recycler = recycler
	}
}

// WithObserver attaches a callback hook that is informed whenever the list provisions or
// discards batch storage.
func WithObserver[T any](observer AllocationObserver) ListOption[T] {
	return func(l *SegmentedList[T]) {
		l.observer = observer
	}
}

// New creates an empty SegmentedList with the provided batch size. No batch is allocated
// until capacity is first required. New returns memutils.NonPositiveBatchSizeError when
// batchSize is zero or negative.
func New[T any](batchSize int, options ...ListOption[T]) (*SegmentedList[T], error) {
	if err := memutils.CheckPositive(batchSize, "batchSize"); err != nil {
		return nil, err
	}

	l := &SegmentedList[T]{
		batchSize: batchSize,
	}
	for _, option := range options {
		option(l)
	}
	return l, nil
}

// Size returns the number of logically valid elements in the list.
func (l *SegmentedList[T]) Size() int { return l.size }

// Capacity returns the total number of element slots backed by allocated batches.
func (l *SegmentedList[T]) Capacity() int { return len(l.batches) * l.batchSize }

// BatchSize returns the fixed per-batch slot count chosen at construction.
func (l *SegmentedList[T]) BatchSize() int { return l.batchSize }

// SetDefaultValue records the fill value for all batches allocated from here on. It must be
// called before the list allocates its first batch and returns
// memutils.DefaultValueLockedError afterward, so that every batch the list ever owns shares
// the same fill semantics.
func (l *SegmentedList[T]) SetDefaultValue(value T) error {
	if len(l.batches) > 0 {
		return cerrors.Wrapf(memutils.DefaultValueLockedError, "%d batches are already allocated", len(l.batches))
	}

	l.defaultValue = value
	l.defaultSet = true
	return nil
}

// SetComparator installs the ordering consulted by CompareIndices. Lists built with
// NewOrdered come with the natural ordering preinstalled; installing a comparator here
// replaces it. Passing nil uninstalls the comparator, after which CompareIndices panics.
func (l *SegmentedList[T]) SetComparator(compare Comparator[T]) {
	l.compare = compare
}

// Add appends value as the element at index Size, provisioning a new batch first when the
// current capacity is exhausted.
func (l *SegmentedList[T]) Add(value T) {
	if l.size == l.Capacity() {
		l.EnsureCapacity(l.size)
	}

	l.batches[l.size/l.batchSize][l.size%l.batchSize] = value
	l.size++
	l.generation++
}

// Get returns the element at the provided logical index.
//
// Indexes inside [0, Size) are always valid. As a documented looseness, an index beyond
// Size but within Capacity does not fail in release builds: it
// returns the batch fill value (the default value, or T's zero value) for slots that were
// never written. Builds with the debug_mem_utils tag enforce the strict [0, Size) bound and
// panic on violations. Callers that want a checked accessor should use At.
func (l *SegmentedList[T]) Get(index int) T {
	memutils.DebugCheckIndex(index, l.size)
	return l.batches[index/l.batchSize][index%l.batchSize]
}

// At returns the element at the provided logical index, or
// memutils.IndexOutOfRangeError when index falls outside [0, Size).
func (l *SegmentedList[T]) At(index int) (T, error) {
	if err := memutils.CheckIndex(index, l.size); err != nil {
		var empty T
		return empty, err
	}
	return l.batches[index/l.batchSize][index%l.batchSize], nil
}

// CompareIndices returns the three-way comparison of the elements at indices i1 and i2
// under the list's comparator. It panics if no comparator is installed.
func (l *SegmentedList[T]) CompareIndices(i1, i2 int) int {
	if l.compare == nil {
		panic("memory: CompareIndices called on a list with no comparator installed")
	}
	return l.compare(l.Get(i1), l.Get(i2))
}

// EnsureCapacity provisions batches until the capacity covers length elements. It never
// removes or reorders existing batches, and calling it with a length the capacity already
// covers is a no-op.
func (l *SegmentedList[T]) EnsureCapacity(length int) {
	for length/l.batchSize >= len(l.batches) {
		l.batches = append(l.batches, l.freshBatch(nil))
		l.generation++
	}
}

// Clear discards every batch and resets the size to 0. Discarded batches are offered to the
// recycler when one is attached.
func (l *SegmentedList[T]) Clear() {
	for _, batch := range l.batches {
		l.releaseBatch(batch)
	}

	l.batches = nil
	l.size = 0
	l.generation++
}

// Reset is shorthand for ResetTo with the list's batch size.
func (l *SegmentedList[T]) Reset() {
	l.ResetTo(l.batchSize)
}

// ResetTo shrinks the list to the minimum prefix of existing batches covering length
// elements, rewraps that prefix as value-cleared storage, and provisions any further
// batches needed so the capacity covers length. The size is 0 afterward. Batches beyond
// the retained prefix are discarded through the same path as Clear.
func (l *SegmentedList[T]) ResetTo(length int) {
	retainedCount := 0
	for retainedCount < len(l.batches) {
		retainedCount++
		if retainedCount*l.batchSize >= length {
			break
		}
	}

	retained := make([][]T, retainedCount)
	copy(retained, l.batches[:retainedCount])

	// Leave only the suffix for Clear to discard; the retained prefix is rewrapped below.
	l.batches = l.batches[retainedCount:]
	l.Clear()

	for _, batch := range retained {
		l.batches = append(l.batches, l.freshBatch(batch))
	}
	l.EnsureCapacity(length)
}

// freshBatch is the sole provisioning point for batch storage. When reuse is non-nil, its
// storage is rewrapped in place: contents are cleared back to the fill value and no
// allocation happens. Otherwise the recycler is consulted, and only when it comes up empty
// is a new batch allocated.
func (l *SegmentedList[T]) freshBatch(reuse []T) []T {
	if reuse == nil && l.recycler != nil {
		reuse, _ = l.recycler.take(l.batchSize)
	}

	if reuse != nil {
		for i := range reuse {
			reuse[i] = l.defaultValue
		}
		l.batchesReused++
		if l.observer != nil {
			l.observer.OnBatchReused(l.batchSize)
		}
		return reuse
	}

	batch := make([]T, l.batchSize)
	if l.defaultSet {
		for i := range batch {
			batch[i] = l.defaultValue
		}
	}
	l.batchesAllocated++
	if l.observer != nil {
		l.observer.OnBatchAllocated(l.batchSize)
	}
	return batch
}

func (l *SegmentedList[T]) releaseBatch(batch []T) {
	if l.observer != nil {
		l.observer.OnBatchReleased(l.batchSize)
	}
	if l.recycler != nil {
		l.recycler.give(batch)
	}
}

// Validate performs internal consistency checks on the batch bookkeeping.
func (l *SegmentedList[T]) Validate() error {
	if l.batchSize <= 0 {
		return errors.Errorf("the list has a non-positive batch size %d", l.batchSize)
	}

	if l.size < 0 {
		return errors.Errorf("the list has a negative size %d", l.size)
	}

	if l.size > l.Capacity() {
		return errors.Errorf("the list size %d exceeds the capacity %d backed by %d batches", l.size, l.Capacity(), len(l.batches))
	}

	for i, batch := range l.batches {
		if len(batch) != l.batchSize {
			return errors.Errorf("the batch at index %d holds %d slots, but every batch must hold exactly %d", i, len(batch), l.batchSize)
		}
	}

	return nil
}

// AddStatistics sums this list's storage statistics into the provided statistics object.
func (l *SegmentedList[T]) AddStatistics(stats *memutils.ListStatistics) {
	stats.BatchCount += len(l.batches)
	stats.CapacitySlots += l.Capacity()
	stats.LiveSlots += l.size
	stats.BatchesAllocated += l.batchesAllocated
	stats.BatchesReused += l.batchesReused
}

// PrintStats populates a json object with information about this list's storage.
func (l *SegmentedList[T]) PrintStats(writer *jwriter.Writer) {
	var stats memutils.ListStatistics
	l.AddStatistics(&stats)

	obj := writer.Object()
	obj.Name("BatchSize").Int(l.batchSize)
	stats.PrintJson(obj)
	obj.End()
}

// DebugLogBatches writes one log line per live batch to the provided logger. Depending on
// batch count this can be slow and should only be done for diagnostic purposes.
func (l *SegmentedList[T]) DebugLogBatches(logger *slog.Logger) {
	for i := range l.batches {
		liveSlots := l.size - i*l.batchSize
		if liveSlots > l.batchSize {
			liveSlots = l.batchSize
		} else if liveSlots < 0 {
			liveSlots = 0
		}

		logger.Debug("batch",
			slog.Int("index", i),
			slog.Int("liveSlots", liveSlots),
			slog.Int("capacitySlots", l.batchSize),
		)
	}
}
