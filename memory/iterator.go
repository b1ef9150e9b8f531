package memory

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/fannyfur/Cubert/memutils"
)

// Iterator walks the logical elements of a SegmentedList in index order. It captures the
// list's generation counter at creation and fails fast when the list is mutated while the
// iteration is in progress, rather than silently reading torn state.
//
//	it := l.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	list       *SegmentedList[T]
	generation uint64
	length     int

	next  int
	value T
	err   error
}

// Iterator returns an iterator over the list's current elements, indices 0 through Size-1.
func (l *SegmentedList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		list:       l,
		generation: l.generation,
		length:     l.size,
	}
}

// Next advances the iterator and reports whether a value is available through Value. It
// returns false when the elements are exhausted, and also when the list was mutated since
// the iterator was created; check Err to tell the two apart.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if it.list.generation != it.generation {
		it.err = cerrors.Wrapf(memutils.ConcurrentModificationError,
			"iterator was created at generation %d, the list is now at %d", it.generation, it.list.generation)
		return false
	}

	if it.next >= it.length {
		return false
	}

	it.value = it.list.Get(it.next)
	it.next++
	return true
}

// Value returns the element produced by the last successful call to Next.
func (it *Iterator[T]) Value() T { return it.value }

// Index returns the logical index of the element produced by the last successful call to
// Next.
func (it *Iterator[T]) Index() int { return it.next - 1 }

// Err returns memutils.ConcurrentModificationError (wrapped) when the iteration stopped
// because the list was mutated, and nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }

// VisitAll calls handleValue once for each logical element in index order. It stops at the
// first error the callback returns, and returns memutils.ConcurrentModificationError when
// the list is mutated mid-walk.
func (l *SegmentedList[T]) VisitAll(handleValue func(index int, value T) error) error {
	generation := l.generation

	for i := 0; i < l.size; i++ {
		if l.generation != generation {
			return cerrors.Wrapf(memutils.ConcurrentModificationError,
				"the walk began at generation %d, the list is now at %d", generation, l.generation)
		}

		if err := handleValue(i, l.Get(i)); err != nil {
			return err
		}
	}
	return nil
}
