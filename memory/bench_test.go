package memory_test

import (
	"testing"

	"github.com/fannyfur/Cubert/memory"
)

func BenchmarkAdd(b *testing.B) {
	l, _ := memory.NewIntList(memory.DefaultBatchSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(int64(i))
	}
}

func BenchmarkGet(b *testing.B) {
	l, _ := memory.NewIntList(memory.DefaultBatchSize)
	for i := int64(0); i < 1<<16; i++ {
		l.Add(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Get(i & (1<<16 - 1))
	}
}

func BenchmarkFillResetCycle(b *testing.B) {
	const cycleLength = 1 << 14
	l, _ := memory.NewIntList(memory.DefaultBatchSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := int64(0); j < cycleLength; j++ {
			l.Add(j)
		}
		l.ResetTo(cycleLength)
	}
}

func BenchmarkFillResetCycleWithRecycler(b *testing.B) {
	const cycleLength = 1 << 14
	recycler := memory.NewRecycler[int64]()
	l, _ := memory.NewIntList(memory.DefaultBatchSize, memory.WithRecycler(recycler))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := int64(0); j < cycleLength; j++ {
			l.Add(j)
		}
		l.ResetTo(cycleLength)
	}
}
