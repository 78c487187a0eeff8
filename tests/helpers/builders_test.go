package helpers

import (
	"testing"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// TestWorkerBuilder_Default verifies WorkerBuilder creates valid entities with defaults
func TestWorkerBuilder_Default(t *testing.T) {
	worker := NewWorkerBuilder().MustBuild()

	if worker.ID != "worker-1" {
		t.Error("expected default ID")
	}
	if worker.Name != "Test Worker" {
		t.Error("expected default name")
	}
	if worker.WorkerType != "RN" {
		t.Error("expected default worker type")
	}
}

// TestWorkerBuilder_WithMethods verifies builder methods chain and set values
func TestWorkerBuilder_WithMethods(t *testing.T) {
	worker := NewWorkerBuilder().
		WithID("w-42").
		WithName("Alice").
		WithWorkerType("MD").
		WithRestricted("night").
		WithPreferred("day").
		MustBuild()

	if worker.ID != "w-42" {
		t.Error("expected custom ID")
	}
	if worker.Name != "Alice" {
		t.Error("expected custom name")
	}
	if worker.WorkerType != "MD" {
		t.Error("expected custom worker type")
	}
	if !worker.IsRestrictedFrom("night") {
		t.Error("expected night shift to be restricted")
	}
	if !worker.Prefers("day") {
		t.Error("expected day shift to be preferred")
	}
}

// TestWorkerBuilder_ConflictingSets verifies construction rejects overlapping restricted/preferred
func TestWorkerBuilder_ConflictingSets(t *testing.T) {
	_, err := NewWorkerBuilder().
		WithRestricted("day").
		WithPreferred("day").
		Build()

	if err == nil {
		t.Error("expected error when restricted and preferred overlap")
	}
}

// TestShiftTypeBuilder_Default verifies ShiftTypeBuilder creates valid entities
func TestShiftTypeBuilder_Default(t *testing.T) {
	shiftType := NewShiftTypeBuilder().MustBuild()

	if shiftType.ID != "day" {
		t.Error("expected default ID")
	}
	if shiftType.StartTime != "08:00" {
		t.Error("expected default start time")
	}
	if shiftType.EndTime != "16:00" {
		t.Error("expected default end time")
	}
	if shiftType.WorkersRequired != 1 {
		t.Error("expected default workers required")
	}
}

// TestShiftTypeBuilder_AllWeekdays verifies applicable day wiring works across the full week
func TestShiftTypeBuilder_AllWeekdays(t *testing.T) {
	days := []entity.Weekday{
		entity.Monday, entity.Tuesday, entity.Wednesday,
		entity.Thursday, entity.Friday, entity.Saturday, entity.Sunday,
	}

	shiftType := NewShiftTypeBuilder().WithApplicableDays(days...).MustBuild()

	for _, day := range days {
		if !shiftType.IsApplicableOn(day) {
			t.Errorf("expected shift type to be applicable on %v", day)
		}
	}
}

// TestShiftTypeBuilder_InvalidDuration verifies construction rejects a non-positive duration
func TestShiftTypeBuilder_InvalidDuration(t *testing.T) {
	_, err := NewShiftTypeBuilder().WithDurationHours(0).Build()
	if err == nil {
		t.Error("expected error for non-positive duration")
	}
}

// TestAvailabilityBuilder_Default verifies AvailabilityBuilder creates valid entities
func TestAvailabilityBuilder_Default(t *testing.T) {
	avail := NewAvailabilityBuilder().MustBuild()

	if avail.WorkerID != "worker-1" {
		t.Error("expected default worker ID")
	}
	if avail.Kind != entity.Available {
		t.Error("expected default kind to be Available")
	}
	if !avail.End.After(avail.Start) {
		t.Error("expected end to be after start")
	}
}

// TestAvailabilityBuilder_AllKinds verifies all availability kinds can be set
func TestAvailabilityBuilder_AllKinds(t *testing.T) {
	kinds := []entity.AvailabilityKind{entity.Unavailable, entity.Available, entity.Preferred}

	for _, kind := range kinds {
		avail := NewAvailabilityBuilder().WithKind(kind).MustBuild()
		if avail.Kind != kind {
			t.Errorf("expected kind %v, got %v", kind, avail.Kind)
		}
	}
}

// TestAvailabilityBuilder_InvalidRange verifies construction rejects end before start
func TestAvailabilityBuilder_InvalidRange(t *testing.T) {
	now := time.Now().UTC()
	_, err := NewAvailabilityBuilder().WithRange(now, now.Add(-time.Hour)).Build()
	if err == nil {
		t.Error("expected error when end precedes start")
	}
}

// TestWorkerRequestBuilder_Default verifies WorkerRequestBuilder creates valid entities
func TestWorkerRequestBuilder_Default(t *testing.T) {
	req := NewWorkerRequestBuilder().MustBuild()

	if req.WorkerID != "worker-1" {
		t.Error("expected default worker ID")
	}
	if req.Polarity != entity.Positive {
		t.Error("expected default polarity to be Positive")
	}
	if req.Priority != 1 {
		t.Error("expected default priority")
	}
}

// TestWorkerRequestBuilder_NegativePolarity verifies polarity wiring
func TestWorkerRequestBuilder_NegativePolarity(t *testing.T) {
	req := NewWorkerRequestBuilder().WithPolarity(entity.Negative).MustBuild()
	if req.Polarity != entity.Negative {
		t.Error("expected negative polarity")
	}
}

// TestWorkerRequestBuilder_InvalidPriority verifies construction rejects negative priority
func TestWorkerRequestBuilder_InvalidPriority(t *testing.T) {
	_, err := NewWorkerRequestBuilder().WithPriority(-1).Build()
	if err == nil {
		t.Error("expected error for negative priority")
	}
}

// TestScheduleBuilder_Default verifies ScheduleBuilder creates valid entities
func TestScheduleBuilder_Default(t *testing.T) {
	schedule := NewScheduleBuilder().MustBuild()

	if schedule.ScheduleID != "schedule-1" {
		t.Error("expected default schedule ID")
	}
	if !schedule.EndDate.After(schedule.StartDate) {
		t.Error("expected end date to be after start date")
	}
}

// TestScheduleBuilder_WithWorkersAndShiftTypes verifies the builder wires related entities
func TestScheduleBuilder_WithWorkersAndShiftTypes(t *testing.T) {
	worker := NewWorkerBuilder().MustBuild()
	shiftType := NewShiftTypeBuilder().MustBuild()

	schedule := NewScheduleBuilder().
		WithWorkers(worker).
		WithShiftTypes(shiftType).
		MustBuild()

	if len(schedule.Workers) != 1 {
		t.Error("expected one worker on schedule")
	}
	if len(schedule.ShiftTypes) != 1 {
		t.Error("expected one shift type on schedule")
	}
}

// TestBuilders_Immutability verifies builder fields don't leak across independent builders
func TestBuilders_Immutability(t *testing.T) {
	builder1 := NewWorkerBuilder().WithName("Worker One")
	worker1 := builder1.MustBuild()

	builder2 := NewWorkerBuilder().WithName("Worker Two")
	worker2 := builder2.MustBuild()

	if worker1.Name == worker2.Name {
		t.Error("expected builders to be independent")
	}

	worker1b := builder1.MustBuild()
	if worker1b.Name != "Worker One" {
		t.Error("expected builder to remember state across rebuilds")
	}
}

// TestSolveJobBuilder_Default verifies SolveJobBuilder creates valid records
func TestSolveJobBuilder_Default(t *testing.T) {
	job := NewSolveJobBuilder().Build()

	if job.ID.String() == "" {
		t.Error("expected job ID to be set")
	}
	if job.Status != repository.SolveJobPending {
		t.Error("expected default status to be pending")
	}
	if job.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

// TestSolveJobBuilder_WithStatus verifies status can be overridden
func TestSolveJobBuilder_WithStatus(t *testing.T) {
	job := NewSolveJobBuilder().WithStatus(repository.SolveJobSucceeded).Build()
	if job.Status != repository.SolveJobSucceeded {
		t.Error("expected status to be succeeded")
	}
}

// BenchmarkWorkerBuilder benchmarks Worker entity creation
func BenchmarkWorkerBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewWorkerBuilder().MustBuild()
	}
}

// BenchmarkShiftTypeBuilder benchmarks ShiftType entity creation
func BenchmarkShiftTypeBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewShiftTypeBuilder().MustBuild()
	}
}

// BenchmarkScheduleBuilder benchmarks Schedule entity creation
func BenchmarkScheduleBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewScheduleBuilder().MustBuild()
	}
}
