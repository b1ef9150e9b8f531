package memutils_test

import (
	"testing"

	"github.com/fannyfur/Cubert/memutils"
	"github.com/stretchr/testify/require"
)

func TestCheckPositive(t *testing.T) {
	require.NoError(t, memutils.CheckPositive(1, "batchSize"))
	require.NoError(t, memutils.CheckPositive(int64(1024), "batchSize"))

	err := memutils.CheckPositive(0, "batchSize")
	require.ErrorIs(t, err, memutils.NonPositiveBatchSizeError)
	require.ErrorContains(t, err, "batchSize is 0")

	require.ErrorIs(t, memutils.CheckPositive(-5, "batchSize"), memutils.NonPositiveBatchSizeError)
}

func TestCheckIndex(t *testing.T) {
	require.NoError(t, memutils.CheckIndex(0, 1))
	require.NoError(t, memutils.CheckIndex(9, 10))

	require.ErrorIs(t, memutils.CheckIndex(-1, 10), memutils.IndexOutOfRangeError)
	require.ErrorIs(t, memutils.CheckIndex(10, 10), memutils.IndexOutOfRangeError)
	require.ErrorIs(t, memutils.CheckIndex(0, 0), memutils.IndexOutOfRangeError)
}

func TestBatchesForLength(t *testing.T) {
	require.Equal(t, 0, memutils.BatchesForLength(0, 4))
	require.Equal(t, 1, memutils.BatchesForLength(1, 4))
	require.Equal(t, 1, memutils.BatchesForLength(4, 4))
	require.Equal(t, 2, memutils.BatchesForLength(5, 4))
	require.Equal(t, 3, memutils.BatchesForLength(12, 4))
}
