package memutils

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// ListStatistics describes the storage footprint of one or more segmented lists. The
// allocation counters are cumulative over the life of the list, so repeated reset cycles
// that successfully reuse batch storage show up as a growing BatchesReused with a flat
// BatchesAllocated.
type ListStatistics struct {
	// BatchCount is the number of batches currently live
	BatchCount int
	// CapacitySlots is the total number of element slots backed by live batches
	CapacitySlots int
	// LiveSlots is the number of slots holding logically valid elements
	LiveSlots int
	// BatchesAllocated is the cumulative number of batches provisioned with fresh storage
	BatchesAllocated int
	// BatchesReused is the cumulative number of batches provisioned by rewrapping
	// previously allocated storage
	BatchesReused int
}

func (s *ListStatistics) Clear() {
	s.BatchCount = 0
	s.CapacitySlots = 0
	s.LiveSlots = 0
	s.BatchesAllocated = 0
	s.BatchesReused = 0
}

// AddListStatistics sums another statistics object into this one.
func (s *ListStatistics) AddListStatistics(other *ListStatistics) {
	s.BatchCount += other.BatchCount
	s.CapacitySlots += other.CapacitySlots
	s.LiveSlots += other.LiveSlots
	s.BatchesAllocated += other.BatchesAllocated
	s.BatchesReused += other.BatchesReused
}

// PrintJson populates a json object with the contents of this statistics object.
func (s *ListStatistics) PrintJson(json jwriter.ObjectState) {
	json.Name("Batches").Int(s.BatchCount)
	json.Name("CapacitySlots").Int(s.CapacitySlots)
	json.Name("LiveSlots").Int(s.LiveSlots)
	json.Name("BatchesAllocated").Int(s.BatchesAllocated)
	json.Name("BatchesReused").Int(s.BatchesReused)
}
