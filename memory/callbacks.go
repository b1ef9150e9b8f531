package memory

// AllocationObserver is an optional hook informed whenever a list provisions or discards
// batch storage. The batchSize argument is the slot count of the batch in question.
// Observers are invoked synchronously from the provisioning path and must be cheap.
//
//go:generate mockgen -source callbacks.go -destination mocks/callbacks.go
type AllocationObserver interface {
	// OnBatchAllocated fires when a batch is provisioned with freshly allocated storage.
	OnBatchAllocated(batchSize int)
	// OnBatchReused fires when a batch is provisioned by rewrapping existing storage,
	// either the retained prefix of a reset or a recycler hit.
	OnBatchReused(batchSize int)
	// OnBatchReleased fires when a batch leaves the list through Clear or the discarded
	// suffix of a reset.
	OnBatchReleased(batchSize int)
}
