package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// MockWorkerRepository is a mock implementation of repository.WorkerRepository
// for testing.
type MockWorkerRepository struct {
	mu      sync.RWMutex
	workers map[string]entity.Worker
	getErr  error
	saveErr error
}

// NewMockWorkerRepository creates a new mock worker repository.
func NewMockWorkerRepository() *MockWorkerRepository {
	return &MockWorkerRepository{
		workers: make(map[string]entity.Worker),
	}
}

// Create stores a worker (mock implementation).
func (m *MockWorkerRepository) Create(ctx context.Context, worker entity.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.workers[worker.ID] = worker
	return nil
}

// GetByID retrieves a worker by ID (mock implementation).
func (m *MockWorkerRepository) GetByID(ctx context.Context, id string) (entity.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return entity.Worker{}, m.getErr
	}
	if worker, ok := m.workers[id]; ok {
		return worker, nil
	}
	return entity.Worker{}, &repository.NotFoundError{ResourceType: "Worker", ResourceID: id}
}

// ListAll retrieves all workers (mock implementation).
func (m *MockWorkerRepository) ListAll(ctx context.Context) ([]entity.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	workers := make([]entity.Worker, 0, len(m.workers))
	for _, worker := range m.workers {
		workers = append(workers, worker)
	}
	return workers, nil
}

// Update replaces a stored worker (mock implementation).
func (m *MockWorkerRepository) Update(ctx context.Context, worker entity.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.workers[worker.ID]; !ok {
		return &repository.NotFoundError{ResourceType: "Worker", ResourceID: worker.ID}
	}
	m.workers[worker.ID] = worker
	return nil
}

// Delete removes a stored worker (mock implementation).
func (m *MockWorkerRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workers, id)
	return nil
}

// Count returns the number of stored workers.
func (m *MockWorkerRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.workers)), nil
}

// SetGetError sets the error to return from read operations.
func (m *MockWorkerRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSaveError sets the error to return from write operations.
func (m *MockWorkerRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Clear removes all stored workers.
func (m *MockWorkerRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers = make(map[string]entity.Worker)
}

// MockShiftTypeRepository is a mock implementation of
// repository.ShiftTypeRepository for testing.
type MockShiftTypeRepository struct {
	mu         sync.RWMutex
	shiftTypes map[string]entity.ShiftType
	getErr     error
	saveErr    error
}

// NewMockShiftTypeRepository creates a new mock shift type repository.
func NewMockShiftTypeRepository() *MockShiftTypeRepository {
	return &MockShiftTypeRepository{
		shiftTypes: make(map[string]entity.ShiftType),
	}
}

// Create stores a shift type (mock implementation).
func (m *MockShiftTypeRepository) Create(ctx context.Context, shiftType entity.ShiftType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.shiftTypes[shiftType.ID] = shiftType
	return nil
}

// GetByID retrieves a shift type by ID (mock implementation).
func (m *MockShiftTypeRepository) GetByID(ctx context.Context, id string) (entity.ShiftType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return entity.ShiftType{}, m.getErr
	}
	if shiftType, ok := m.shiftTypes[id]; ok {
		return shiftType, nil
	}
	return entity.ShiftType{}, &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: id}
}

// ListAll retrieves all shift types (mock implementation).
func (m *MockShiftTypeRepository) ListAll(ctx context.Context) ([]entity.ShiftType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	shiftTypes := make([]entity.ShiftType, 0, len(m.shiftTypes))
	for _, shiftType := range m.shiftTypes {
		shiftTypes = append(shiftTypes, shiftType)
	}
	return shiftTypes, nil
}

// Update replaces a stored shift type (mock implementation).
func (m *MockShiftTypeRepository) Update(ctx context.Context, shiftType entity.ShiftType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.shiftTypes[shiftType.ID]; !ok {
		return &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: shiftType.ID}
	}
	m.shiftTypes[shiftType.ID] = shiftType
	return nil
}

// Delete removes a stored shift type (mock implementation).
func (m *MockShiftTypeRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.shiftTypes, id)
	return nil
}

// Count returns the number of stored shift types.
func (m *MockShiftTypeRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.shiftTypes)), nil
}

// SetGetError sets the error to return from read operations.
func (m *MockShiftTypeRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSaveError sets the error to return from write operations.
func (m *MockShiftTypeRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Clear removes all stored shift types.
func (m *MockShiftTypeRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shiftTypes = make(map[string]entity.ShiftType)
}

// MockAvailabilityRepository is a mock implementation of
// repository.AvailabilityRepository for testing.
type MockAvailabilityRepository struct {
	mu             sync.RWMutex
	availabilities []entity.Availability
	getErr         error
	saveErr        error
}

// NewMockAvailabilityRepository creates a new mock availability repository.
func NewMockAvailabilityRepository() *MockAvailabilityRepository {
	return &MockAvailabilityRepository{}
}

// Create appends an availability window (mock implementation).
func (m *MockAvailabilityRepository) Create(ctx context.Context, availability entity.Availability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.availabilities = append(m.availabilities, availability)
	return nil
}

// ListByWorker retrieves all availability windows for a worker (mock implementation).
func (m *MockAvailabilityRepository) ListByWorker(ctx context.Context, workerID string) ([]entity.Availability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []entity.Availability
	for _, a := range m.availabilities {
		if a.WorkerID == workerID {
			result = append(result, a)
		}
	}
	return result, nil
}

// ListByDateRange retrieves all availability windows overlapping a date range (mock implementation).
func (m *MockAvailabilityRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Availability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []entity.Availability
	for _, a := range m.availabilities {
		if a.Start.Before(end) && a.End.After(start) {
			result = append(result, a)
		}
	}
	return result, nil
}

// Delete removes availability windows for a worker within a date range (mock implementation).
func (m *MockAvailabilityRepository) Delete(ctx context.Context, workerID string, start, end time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.availabilities[:0]
	for _, a := range m.availabilities {
		if a.WorkerID == workerID && a.Start.Before(end) && a.End.After(start) {
			continue
		}
		kept = append(kept, a)
	}
	m.availabilities = kept
	return nil
}

// Count returns the number of stored availability windows.
func (m *MockAvailabilityRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.availabilities)), nil
}

// SetGetError sets the error to return from read operations.
func (m *MockAvailabilityRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSaveError sets the error to return from write operations.
func (m *MockAvailabilityRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Clear removes all stored availability windows.
func (m *MockAvailabilityRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.availabilities = nil
}

// MockSolveJobRepository is a mock implementation of
// repository.SolveJobRepository for testing.
type MockSolveJobRepository struct {
	mu      sync.RWMutex
	jobs    map[uuid.UUID]repository.SolveJob
	getErr  error
	saveErr error
}

// NewMockSolveJobRepository creates a new mock solve job repository.
func NewMockSolveJobRepository() *MockSolveJobRepository {
	return &MockSolveJobRepository{
		jobs: make(map[uuid.UUID]repository.SolveJob),
	}
}

// Create stores a solve job (mock implementation).
func (m *MockSolveJobRepository) Create(ctx context.Context, job repository.SolveJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.jobs[job.ID] = job
	return nil
}

// GetByID retrieves a solve job by ID (mock implementation).
func (m *MockSolveJobRepository) GetByID(ctx context.Context, id uuid.UUID) (repository.SolveJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return repository.SolveJob{}, m.getErr
	}
	if job, ok := m.jobs[id]; ok {
		return job, nil
	}
	return repository.SolveJob{}, &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: id.String()}
}

// GetByStatus retrieves all solve jobs with a given status (mock implementation).
func (m *MockSolveJobRepository) GetByStatus(ctx context.Context, status repository.SolveJobStatus) ([]repository.SolveJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []repository.SolveJob
	for _, job := range m.jobs {
		if job.Status == status {
			result = append(result, job)
		}
	}
	return result, nil
}

// GetPending retrieves all pending solve jobs (mock implementation).
func (m *MockSolveJobRepository) GetPending(ctx context.Context) ([]repository.SolveJob, error) {
	return m.GetByStatus(ctx, repository.SolveJobPending)
}

// Update replaces a stored solve job (mock implementation).
func (m *MockSolveJobRepository) Update(ctx context.Context, job repository.SolveJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.jobs[job.ID]; !ok {
		return &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: job.ID.String()}
	}
	m.jobs[job.ID] = job
	return nil
}

// Delete removes a stored solve job (mock implementation).
func (m *MockSolveJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.jobs, id)
	return nil
}

// Count returns the number of stored solve jobs.
func (m *MockSolveJobRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.jobs)), nil
}

// CleanupOldJobs removes solve jobs older than daysOld (mock implementation).
func (m *MockSolveJobRepository) CleanupOldJobs(ctx context.Context, daysOld int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().UTC().AddDate(0, 0, -daysOld)
	var removed int64
	for id, job := range m.jobs {
		if job.CreatedAt.Before(cutoff) {
			delete(m.jobs, id)
			removed++
		}
	}
	return removed, nil
}

// SetGetError sets the error to return from read operations.
func (m *MockSolveJobRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSaveError sets the error to return from write operations.
func (m *MockSolveJobRepository) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Clear removes all stored solve jobs.
func (m *MockSolveJobRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = make(map[uuid.UUID]repository.SolveJob)
}
