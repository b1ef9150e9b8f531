package memory

import (
	"github.com/dolthub/swiss"
)

// Recycler is a free-list of discarded batches, keyed by batch size so that lists with
// different batch sizes can share one. Lists constructed with WithRecycler hand it the
// batches they discard and consult it before allocating fresh storage, which keeps a
// pipeline that repeatedly fills and resets lists of similar magnitude at a steady
// allocation footprint.
//
// A Recycler has no internal synchronization and must only be shared between lists used
// from the same goroutine.
type Recycler[T any] struct {
	free *swiss.Map[int, [][]T]

	// limit bounds the number of retained batches per size class; negative means unbounded
	limit int
}

// NewRecycler creates an empty Recycler with no retention bound.
func NewRecycler[T any]() *Recycler[T] {
	return &Recycler[T]{
		free:  swiss.NewMap[int, [][]T](8),
		limit: -1,
	}
}

// Count returns the number of batches currently retained across all size classes.
func (r *Recycler[T]) Count() int {
	count := 0
	r.free.Iter(func(batchSize int, batches [][]T) bool {
		count += len(batches)
		return false
	})
	return count
}

// TrimTo discards retained batches until each size class holds at most limit, and keeps
// enforcing that bound for batches handed over afterward. A limit of 0 empties the
// recycler and makes it retain nothing from here on.
func (r *Recycler[T]) TrimTo(limit int) {
	if limit < 0 {
		limit = 0
	}
	r.limit = limit

	sizeClasses := make([]int, 0, r.free.Count())
	r.free.Iter(func(batchSize int, batches [][]T) bool {
		sizeClasses = append(sizeClasses, batchSize)
		return false
	})

	for _, batchSize := range sizeClasses {
		batches, _ := r.free.Get(batchSize)
		if len(batches) > limit {
			r.free.Put(batchSize, batches[:limit])
		}
	}
}

func (r *Recycler[T]) give(batch []T) {
	if len(batch) == 0 {
		return
	}

	batches, _ := r.free.Get(len(batch))
	if r.limit >= 0 && len(batches) >= r.limit {
		return
	}
	r.free.Put(len(batch), append(batches, batch))
}

func (r *Recycler[T]) take(batchSize int) ([]T, bool) {
	batches, ok := r.free.Get(batchSize)
	if !ok || len(batches) == 0 {
		return nil, false
	}

	batch := batches[len(batches)-1]
	r.free.Put(batchSize, batches[:len(batches)-1])
	return batch, true
}
