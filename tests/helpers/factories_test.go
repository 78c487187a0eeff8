package helpers

import (
	"testing"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// TestCreateValidWorker verifies factory creates a valid Worker
func TestCreateValidWorker(t *testing.T) {
	worker := CreateValidWorker()

	if worker.ID == "" {
		t.Error("expected worker ID to be set")
	}
	if worker.Name == "" {
		t.Error("expected worker name to be set")
	}
}

// TestCreateValidWorkerWithID verifies factory sets custom ID
func TestCreateValidWorkerWithID(t *testing.T) {
	worker := CreateValidWorkerWithID("w-99")
	if worker.ID != "w-99" {
		t.Error("expected custom worker ID")
	}
}

// TestCreateValidWorkerWithRestricted verifies factory wires restricted shift types
func TestCreateValidWorkerWithRestricted(t *testing.T) {
	worker := CreateValidWorkerWithRestricted("night")
	if !worker.IsRestrictedFrom("night") {
		t.Error("expected night shift to be restricted")
	}
}

// TestCreateValidShiftType verifies factory creates a valid ShiftType
func TestCreateValidShiftType(t *testing.T) {
	shiftType := CreateValidShiftType()
	if shiftType.ID == "" {
		t.Error("expected shift type ID to be set")
	}
	if shiftType.DurationHours <= 0 {
		t.Error("expected positive duration")
	}
}

// TestCreateValidShiftTypeUndesirable verifies factory sets undesirable flag
func TestCreateValidShiftTypeUndesirable(t *testing.T) {
	shiftType := CreateValidShiftTypeUndesirable()
	if !shiftType.IsUndesirable {
		t.Error("expected shift type to be undesirable")
	}
}

// TestCreateValidShiftTypeWithCoverage verifies factory sets workers required
func TestCreateValidShiftTypeWithCoverage(t *testing.T) {
	shiftType := CreateValidShiftTypeWithCoverage(3)
	if shiftType.WorkersRequired != 3 {
		t.Error("expected workers required to be 3")
	}
}

// TestCreateValidAvailability verifies factory creates a valid Availability
func TestCreateValidAvailability(t *testing.T) {
	avail := CreateValidAvailability()
	if avail.WorkerID == "" {
		t.Error("expected worker ID to be set")
	}
	if !avail.End.After(avail.Start) {
		t.Error("expected end after start")
	}
}

// TestCreateValidAvailabilityUnavailable verifies factory sets kind
func TestCreateValidAvailabilityUnavailable(t *testing.T) {
	avail := CreateValidAvailabilityUnavailable()
	if avail.Kind != entity.Unavailable {
		t.Error("expected kind to be Unavailable")
	}
}

// TestCreateValidWorkerRequest verifies factory creates a valid WorkerRequest
func TestCreateValidWorkerRequest(t *testing.T) {
	req := CreateValidWorkerRequest()
	if req.WorkerID == "" {
		t.Error("expected worker ID to be set")
	}
	if req.Polarity != entity.Positive {
		t.Error("expected default polarity to be Positive")
	}
}

// TestCreateValidWorkerRequestNegative verifies factory sets negative polarity
func TestCreateValidWorkerRequestNegative(t *testing.T) {
	req := CreateValidWorkerRequestNegative()
	if req.Polarity != entity.Negative {
		t.Error("expected polarity to be Negative")
	}
}

// TestCreateValidSchedule verifies factory creates a valid empty Schedule
func TestCreateValidSchedule(t *testing.T) {
	schedule := CreateValidSchedule()
	if schedule.ScheduleID == "" {
		t.Error("expected schedule ID to be set")
	}
}

// TestCreateValidScheduleWithWorkersAndShiftTypes verifies factory wires related entities
func TestCreateValidScheduleWithWorkersAndShiftTypes(t *testing.T) {
	workers := BulkCreateValidWorkers(3)
	shiftTypes := BulkCreateValidShiftTypes(2)

	schedule := CreateValidScheduleWithWorkersAndShiftTypes(workers, shiftTypes)

	if len(schedule.Workers) != 3 {
		t.Errorf("expected 3 workers, got %d", len(schedule.Workers))
	}
	if len(schedule.ShiftTypes) != 2 {
		t.Errorf("expected 2 shift types, got %d", len(schedule.ShiftTypes))
	}
}

// TestCreateValidSolveJob verifies factory creates a valid pending SolveJob
func TestCreateValidSolveJob(t *testing.T) {
	job := CreateValidSolveJob()
	if job.Status != repository.SolveJobPending {
		t.Error("expected status to be pending")
	}
}

// TestCreateValidSolveJobCompleted verifies factory creates a completed SolveJob
func TestCreateValidSolveJobCompleted(t *testing.T) {
	job := CreateValidSolveJobCompleted()
	if job.Status != repository.SolveJobSucceeded {
		t.Error("expected status to be succeeded")
	}
	if job.ResultSummary == "" {
		t.Error("expected result summary to be set")
	}
}

// TestBulkCreateValidWorkers verifies bulk factory creates multiple valid workers
// with unique IDs.
func TestBulkCreateValidWorkers(t *testing.T) {
	count := 10
	workers := BulkCreateValidWorkers(count)

	if len(workers) != count {
		t.Errorf("expected %d workers, got %d", count, len(workers))
	}

	idMap := make(map[string]bool)
	for _, worker := range workers {
		if idMap[worker.ID] {
			t.Error("expected all worker IDs to be unique")
		}
		idMap[worker.ID] = true
	}
}

// TestBulkCreateValidShiftTypes verifies bulk factory creates multiple valid shift types
// with unique IDs.
func TestBulkCreateValidShiftTypes(t *testing.T) {
	count := 5
	shiftTypes := BulkCreateValidShiftTypes(count)

	if len(shiftTypes) != count {
		t.Errorf("expected %d shift types, got %d", count, len(shiftTypes))
	}

	idMap := make(map[string]bool)
	for _, st := range shiftTypes {
		if idMap[st.ID] {
			t.Error("expected all shift type IDs to be unique")
		}
		idMap[st.ID] = true
	}
}

// TestBulkCreateValidAvailabilities verifies bulk factory creates a contiguous run of windows
func TestBulkCreateValidAvailabilities(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	availabilities := BulkCreateValidAvailabilities("worker-7", 4, start)

	if len(availabilities) != 4 {
		t.Errorf("expected 4 availability windows, got %d", len(availabilities))
	}
	for _, a := range availabilities {
		if a.WorkerID != "worker-7" {
			t.Error("expected all windows to reference the same worker")
		}
	}
}

// BenchmarkFactory_Worker benchmarks Worker factory
func BenchmarkFactory_Worker(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CreateValidWorker()
	}
}

// BenchmarkFactory_BulkWorkers benchmarks bulk Worker creation
func BenchmarkFactory_BulkWorkers(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BulkCreateValidWorkers(10)
	}
}
