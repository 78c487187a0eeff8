package helpers

import (
	"fmt"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// Factory functions create valid entities with sensible defaults, thin
// wrappers over the builders for call sites that don't need full chaining.

// CreateValidWorker creates a valid Worker with all required fields.
func CreateValidWorker() entity.Worker {
	return NewWorkerBuilder().MustBuild()
}

// CreateValidWorkerWithID creates a valid Worker with a specific ID.
func CreateValidWorkerWithID(id string) entity.Worker {
	return NewWorkerBuilder().WithID(id).MustBuild()
}

// CreateValidWorkerWithType creates a valid Worker of a specific worker type.
func CreateValidWorkerWithType(workerType string) entity.Worker {
	return NewWorkerBuilder().WithWorkerType(workerType).MustBuild()
}

// CreateValidWorkerWithRestricted creates a Worker restricted from the given shift types.
func CreateValidWorkerWithRestricted(shiftTypeIDs ...string) entity.Worker {
	return NewWorkerBuilder().WithRestricted(shiftTypeIDs...).MustBuild()
}

// CreateValidWorkerWithPreferred creates a Worker preferring the given shift types.
func CreateValidWorkerWithPreferred(shiftTypeIDs ...string) entity.Worker {
	return NewWorkerBuilder().WithPreferred(shiftTypeIDs...).MustBuild()
}

// CreateValidShiftType creates a valid ShiftType with all required fields.
func CreateValidShiftType() entity.ShiftType {
	return NewShiftTypeBuilder().MustBuild()
}

// CreateValidShiftTypeWithID creates a valid ShiftType with a specific ID.
func CreateValidShiftTypeWithID(id string) entity.ShiftType {
	return NewShiftTypeBuilder().WithID(id).MustBuild()
}

// CreateValidShiftTypeUndesirable creates a valid ShiftType marked undesirable.
func CreateValidShiftTypeUndesirable() entity.ShiftType {
	return NewShiftTypeBuilder().WithUndesirable(true).MustBuild()
}

// CreateValidShiftTypeWithCoverage creates a valid ShiftType requiring multiple workers.
func CreateValidShiftTypeWithCoverage(workersRequired int) entity.ShiftType {
	return NewShiftTypeBuilder().WithWorkersRequired(workersRequired).MustBuild()
}

// CreateValidShiftTypeOnDays creates a valid ShiftType applicable on specific weekdays.
func CreateValidShiftTypeOnDays(days ...entity.Weekday) entity.ShiftType {
	return NewShiftTypeBuilder().WithApplicableDays(days...).MustBuild()
}

// CreateValidAvailability creates a valid Availability window.
func CreateValidAvailability() entity.Availability {
	return NewAvailabilityBuilder().MustBuild()
}

// CreateValidAvailabilityForWorker creates a valid Availability window for a specific worker.
func CreateValidAvailabilityForWorker(workerID string) entity.Availability {
	return NewAvailabilityBuilder().WithWorkerID(workerID).MustBuild()
}

// CreateValidAvailabilityUnavailable creates a valid Unavailable window.
func CreateValidAvailabilityUnavailable() entity.Availability {
	return NewAvailabilityBuilder().WithKind(entity.Unavailable).MustBuild()
}

// CreateValidAvailabilityPreferred creates a valid Preferred window.
func CreateValidAvailabilityPreferred() entity.Availability {
	return NewAvailabilityBuilder().WithKind(entity.Preferred).MustBuild()
}

// CreateValidWorkerRequest creates a valid WorkerRequest.
func CreateValidWorkerRequest() entity.WorkerRequest {
	return NewWorkerRequestBuilder().MustBuild()
}

// CreateValidWorkerRequestNegative creates a valid negative-polarity WorkerRequest
// (time off / avoid-shift request).
func CreateValidWorkerRequestNegative() entity.WorkerRequest {
	return NewWorkerRequestBuilder().WithPolarity(entity.Negative).MustBuild()
}

// CreateValidWorkerRequestWithPriority creates a valid WorkerRequest at a specific priority.
func CreateValidWorkerRequestWithPriority(priority int) entity.WorkerRequest {
	return NewWorkerRequestBuilder().WithPriority(priority).MustBuild()
}

// CreateValidSchedule creates a valid empty Schedule.
func CreateValidSchedule() entity.Schedule {
	return NewScheduleBuilder().MustBuild()
}

// CreateValidScheduleWithWorkersAndShiftTypes creates a Schedule pre-populated
// with the given workers and shift types.
func CreateValidScheduleWithWorkersAndShiftTypes(workers []entity.Worker, shiftTypes []entity.ShiftType) entity.Schedule {
	return NewScheduleBuilder().
		WithWorkers(workers...).
		WithShiftTypes(shiftTypes...).
		MustBuild()
}

// CreateValidSolveJob creates a valid pending SolveJob.
func CreateValidSolveJob() repository.SolveJob {
	return NewSolveJobBuilder().Build()
}

// CreateValidSolveJobWithStatus creates a valid SolveJob in a specific status.
func CreateValidSolveJobWithStatus(status repository.SolveJobStatus) repository.SolveJob {
	return NewSolveJobBuilder().WithStatus(status).Build()
}

// CreateValidSolveJobCompleted creates a valid SolveJob that has finished successfully.
func CreateValidSolveJobCompleted() repository.SolveJob {
	now := time.Now().UTC()
	return NewSolveJobBuilder().
		WithStatus(repository.SolveJobSucceeded).
		WithResultSummary("optimal solution found").
		WithUpdatedAt(now).
		Build()
}

// BulkCreateValidWorkers creates multiple valid Worker entities with unique IDs.
func BulkCreateValidWorkers(count int) []entity.Worker {
	workers := make([]entity.Worker, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("worker-%d", i+1)
		workers[i] = CreateValidWorkerWithID(id)
	}
	return workers
}

// BulkCreateValidShiftTypes creates multiple valid ShiftType entities with unique IDs.
func BulkCreateValidShiftTypes(count int) []entity.ShiftType {
	shiftTypes := make([]entity.ShiftType, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("shift-%d", i+1)
		shiftTypes[i] = CreateValidShiftTypeWithID(id)
	}
	return shiftTypes
}

// BulkCreateValidAvailabilities creates multiple valid Availability windows for a worker,
// one per day starting from the given date.
func BulkCreateValidAvailabilities(workerID string, days int, start time.Time) []entity.Availability {
	availabilities := make([]entity.Availability, days)
	for i := 0; i < days; i++ {
		dayStart := start.AddDate(0, 0, i)
		availabilities[i] = NewAvailabilityBuilder().
			WithWorkerID(workerID).
			WithRange(dayStart, dayStart.AddDate(0, 0, 1)).
			MustBuild()
	}
	return availabilities
}
