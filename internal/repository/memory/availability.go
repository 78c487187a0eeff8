package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schedcu/solver/internal/entity"
)

// AvailabilityRepository is an in-memory implementation for testing.
// Availability records have no natural single-field key, so this repository
// stores them as an append-only slice rather than embedding the generic
// Store the id-keyed repositories use.
type AvailabilityRepository struct {
	mu         sync.RWMutex
	records    []entity.Availability
	queryCount int
}

// NewAvailabilityRepository creates a new in-memory availability repository.
func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

func (r *AvailabilityRepository) Create(_ context.Context, availability entity.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCount++
	r.records = append(r.records, availability)
	return nil
}

func (r *AvailabilityRepository) ListByWorker(_ context.Context, workerID string) ([]entity.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	var out []entity.Availability
	for _, a := range r.records {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AvailabilityRepository) ListByDateRange(_ context.Context, start, end time.Time) ([]entity.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	var out []entity.Availability
	for _, a := range r.records {
		if !a.Start.After(end) && !a.End.Before(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AvailabilityRepository) Delete(_ context.Context, workerID string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCount++
	kept := r.records[:0]
	for _, a := range r.records {
		if a.WorkerID == workerID && a.Start.Equal(start) && a.End.Equal(end) {
			continue
		}
		kept = append(kept, a)
	}
	r.records = kept
	return nil
}

func (r *AvailabilityRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	return int64(len(r.records)), nil
}

// QueryCount returns the number of operations executed, for test assertions.
func (r *AvailabilityRepository) QueryCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queryCount
}

// Reset clears all data and the query counter.
func (r *AvailabilityRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	r.queryCount = 0
}
