// Package repository defines the persistence boundary for the scheduling
// domain: loading the Worker/ShiftType/Availability/WorkerRequest population
// a solve needs, and persisting the Schedule a solve produces.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/schedcu/solver/internal/entity"
)

// Database provides access to all repositories backing one solve-and-persist
// cycle.
type Database interface {
	BeginTx(ctx context.Context) (Transaction, error)

	WorkerRepository() WorkerRepository
	ShiftTypeRepository() ShiftTypeRepository
	AvailabilityRepository() AvailabilityRepository
	WorkerRequestRepository() WorkerRequestRepository
	ScheduleRepository() ScheduleRepository
	SolveJobRepository() SolveJobRepository

	Close() error
	Health(ctx context.Context) error
}

// Transaction represents a database transaction exposing the same
// repository accessors as Database, scoped to the transaction.
type Transaction interface {
	Commit() error
	Rollback() error

	WorkerRepository() WorkerRepository
	ShiftTypeRepository() ShiftTypeRepository
	AvailabilityRepository() AvailabilityRepository
	WorkerRequestRepository() WorkerRequestRepository
	ScheduleRepository() ScheduleRepository
	SolveJobRepository() SolveJobRepository
}

// WorkerRepository defines data access operations for workers.
type WorkerRepository interface {
	Create(ctx context.Context, worker entity.Worker) error
	GetByID(ctx context.Context, id string) (entity.Worker, error)
	ListAll(ctx context.Context) ([]entity.Worker, error)
	Update(ctx context.Context, worker entity.Worker) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ShiftTypeRepository defines data access operations for shift types.
type ShiftTypeRepository interface {
	Create(ctx context.Context, shiftType entity.ShiftType) error
	GetByID(ctx context.Context, id string) (entity.ShiftType, error)
	ListAll(ctx context.Context) ([]entity.ShiftType, error)
	Update(ctx context.Context, shiftType entity.ShiftType) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// AvailabilityRepository defines data access operations for availability
// records.
type AvailabilityRepository interface {
	Create(ctx context.Context, availability entity.Availability) error
	ListByWorker(ctx context.Context, workerID string) ([]entity.Availability, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Availability, error)
	Delete(ctx context.Context, workerID string, start, end time.Time) error
	Count(ctx context.Context) (int64, error)
}

// WorkerRequestRepository defines data access operations for worker
// requests.
type WorkerRequestRepository interface {
	Create(ctx context.Context, request entity.WorkerRequest) error
	ListByWorker(ctx context.Context, workerID string) ([]entity.WorkerRequest, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.WorkerRequest, error)
	Delete(ctx context.Context, workerID, shiftTypeID string, start, end time.Time) error
	Count(ctx context.Context) (int64, error)
}

// ScheduleRepository defines data access operations for persisted solve
// outputs.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule entity.Schedule) error
	GetByID(ctx context.Context, scheduleID string) (entity.Schedule, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Schedule, error)
	Delete(ctx context.Context, scheduleID string) error
	Count(ctx context.Context) (int64, error)
}

// SolveJobStatus enumerates the lifecycle of one asynchronous solve request.
type SolveJobStatus string

const (
	SolveJobPending    SolveJobStatus = "pending"
	SolveJobRunning    SolveJobStatus = "running"
	SolveJobSucceeded  SolveJobStatus = "succeeded"
	SolveJobFailed     SolveJobStatus = "failed"
	SolveJobCancelled  SolveJobStatus = "cancelled"
)

// SolveJob records one asynchronous solve request submitted through the job
// queue: the inputs/config are kept opaque here (marshalled payload) since
// this package must not depend on the solver package's Inputs/Config types
// to avoid a persistence-layer-depends-on-core-layer inversion.
type SolveJob struct {
	ID             uuid.UUID
	ScheduleID     string
	Status         SolveJobStatus
	Payload        []byte // marshalled solver.Inputs + solver.Config
	ResultSummary  string // short human-readable outcome, populated on completion
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SolveJobRepository defines data access operations for the solve job queue.
type SolveJobRepository interface {
	Create(ctx context.Context, job SolveJob) error
	GetByID(ctx context.Context, id uuid.UUID) (SolveJob, error)
	GetByStatus(ctx context.Context, status SolveJobStatus) ([]SolveJob, error)
	GetPending(ctx context.Context) ([]SolveJob, error)
	Update(ctx context.Context, job SolveJob) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CleanupOldJobs(ctx context.Context, daysOld int) (int64, error)
}

// NotFoundError represents a record not found error.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.ResourceType + " " + e.ResourceID
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
