package memory_test

import (
	"testing"

	"github.com/fannyfur/Cubert/memory"
	mock_memory "github.com/fannyfur/Cubert/memory/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestObserverSeesAllocationsOnAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mock_memory.NewMockAllocationObserver(ctrl)

	l, err := memory.NewIntList(4, memory.WithObserver[int64](observer))
	require.NoError(t, err)

	observer.EXPECT().OnBatchAllocated(4).Times(3)
	for i := int64(0); i < 10; i++ {
		l.Add(i)
	}
}

func TestObserverSeesResetReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mock_memory.NewMockAllocationObserver(ctrl)

	l, err := memory.NewIntList(4, memory.WithObserver[int64](observer))
	require.NoError(t, err)

	observer.EXPECT().OnBatchAllocated(4).Times(3)
	for i := int64(0); i < 10; i++ {
		l.Add(i)
	}

	// Two batches cover length 5; the third is released, the two survivors are rewrapped.
	observer.EXPECT().OnBatchReleased(4).Times(1)
	observer.EXPECT().OnBatchReused(4).Times(2)
	l.ResetTo(5)
}

func TestObserverSeesClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mock_memory.NewMockAllocationObserver(ctrl)

	l, err := memory.NewIntList(4, memory.WithObserver[int64](observer))
	require.NoError(t, err)

	observer.EXPECT().OnBatchAllocated(4).Times(2)
	l.EnsureCapacity(4)

	observer.EXPECT().OnBatchReleased(4).Times(2)
	l.Clear()
}

func TestObserverSeesRecyclerHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mock_memory.NewMockAllocationObserver(ctrl)
	recycler := memory.NewRecycler[int64]()

	l, err := memory.NewIntList(4,
		memory.WithObserver[int64](observer),
		memory.WithRecycler(recycler))
	require.NoError(t, err)

	observer.EXPECT().OnBatchAllocated(4).Times(1)
	l.EnsureCapacity(1)

	observer.EXPECT().OnBatchReleased(4).Times(1)
	l.Clear()

	observer.EXPECT().OnBatchReused(4).Times(1)
	l.EnsureCapacity(1)
}
