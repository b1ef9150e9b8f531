package memutils_test

import (
	"testing"

	"github.com/fannyfur/Cubert/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
)

func TestListStatisticsClear(t *testing.T) {
	stats := memutils.ListStatistics{
		BatchCount:       3,
		CapacitySlots:    12,
		LiveSlots:        10,
		BatchesAllocated: 5,
		BatchesReused:    2,
	}
	stats.Clear()

	require.Equal(t, memutils.ListStatistics{}, stats)
}

func TestListStatisticsMerge(t *testing.T) {
	stats := memutils.ListStatistics{
		BatchCount:       3,
		CapacitySlots:    12,
		LiveSlots:        10,
		BatchesAllocated: 5,
		BatchesReused:    2,
	}
	stats.AddListStatistics(&memutils.ListStatistics{
		BatchCount:       1,
		CapacitySlots:    8,
		LiveSlots:        4,
		BatchesAllocated: 1,
		BatchesReused:    3,
	})

	require.Equal(t, memutils.ListStatistics{
		BatchCount:       4,
		CapacitySlots:    20,
		LiveSlots:        14,
		BatchesAllocated: 6,
		BatchesReused:    5,
	}, stats)
}

func TestListStatisticsPrintJson(t *testing.T) {
	stats := memutils.ListStatistics{
		BatchCount:       2,
		CapacitySlots:    8,
		LiveSlots:        5,
		BatchesAllocated: 2,
		BatchesReused:    0,
	}

	writer := jwriter.NewWriter()
	obj := writer.Object()
	stats.PrintJson(obj)
	obj.End()
	require.NoError(t, writer.Error())

	output := string(writer.Bytes())
	require.Contains(t, output, `"Batches":2`)
	require.Contains(t, output, `"CapacitySlots":8`)
	require.Contains(t, output, `"LiveSlots":5`)
	require.Contains(t, output, `"BatchesAllocated":2`)
	require.Contains(t, output, `"BatchesReused":0`)
}
