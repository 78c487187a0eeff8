package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schedcu/solver/internal/entity"
)

// WorkerRequestRepository is an in-memory implementation for testing.
// Like AvailabilityRepository, worker requests have no single natural key,
// so records live in an append-only slice.
type WorkerRequestRepository struct {
	mu         sync.RWMutex
	records    []entity.WorkerRequest
	queryCount int
}

// NewWorkerRequestRepository creates a new in-memory worker request repository.
func NewWorkerRequestRepository() *WorkerRequestRepository {
	return &WorkerRequestRepository{}
}

func (r *WorkerRequestRepository) Create(_ context.Context, request entity.WorkerRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCount++
	r.records = append(r.records, request)
	return nil
}

func (r *WorkerRequestRepository) ListByWorker(_ context.Context, workerID string) ([]entity.WorkerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	var out []entity.WorkerRequest
	for _, req := range r.records {
		if req.WorkerID == workerID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *WorkerRequestRepository) ListByDateRange(_ context.Context, start, end time.Time) ([]entity.WorkerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	var out []entity.WorkerRequest
	for _, req := range r.records {
		if !req.Start.After(end) && !req.End.Before(start) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *WorkerRequestRepository) Delete(_ context.Context, workerID, shiftTypeID string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queryCount++
	kept := r.records[:0]
	for _, req := range r.records {
		if req.WorkerID == workerID && req.ShiftTypeID == shiftTypeID && req.Start.Equal(start) && req.End.Equal(end) {
			continue
		}
		kept = append(kept, req)
	}
	r.records = kept
	return nil
}

func (r *WorkerRequestRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.queryCount++
	return int64(len(r.records)), nil
}

// QueryCount returns the number of operations executed, for test assertions.
func (r *WorkerRequestRepository) QueryCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queryCount
}

// Reset clears all data and the query counter.
func (r *WorkerRequestRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	r.queryCount = 0
}
