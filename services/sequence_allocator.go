package services

import (
	"context"

	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/repository"
)

// SequenceAllocator reserves contiguous blocks of order identifiers from
// the counter store. The increment delta equals the batch size, so two
// concurrent reservations can never overlap for any batch size.
type SequenceAllocator struct {
	counters repository.CounterStore
}

func NewSequenceAllocator(counters repository.CounterStore) *SequenceAllocator {
	return &SequenceAllocator{counters: counters}
}

// ReserveRange reserves batchSize consecutive identifiers and returns the
// first. The item at index i of the batch gets firstID + i. Identifiers
// reserved for items that later fail to persist are not reclaimed;
// uniqueness, not density, is the invariant.
func (a *SequenceAllocator) ReserveRange(ctx context.Context, batchSize int) (int64, error) {
	if batchSize < 1 {
		return 0, apperrors.InvalidArgument("Batch size must be at least 1")
	}

	newValue, err := a.counters.FetchAndIncrement(ctx, models.OrderIDCounter, int64(batchSize))
	if err != nil {
		return 0, apperrors.Unavailable("Failed to generate orderId", err)
	}

	return newValue - int64(batchSize) + 1, nil
}
