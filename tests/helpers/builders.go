package helpers

import (
	"time"

	"github.com/google/uuid"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// WorkerBuilder builds Worker entities with a fluent interface.
type WorkerBuilder struct {
	id         string
	name       string
	workerType string
	restricted []string
	preferred  []string
	attributes map[string]any
}

// NewWorkerBuilder creates a new WorkerBuilder with sensible defaults.
func NewWorkerBuilder() *WorkerBuilder {
	return &WorkerBuilder{
		id:         "worker-1",
		name:       "Test Worker",
		workerType: "RN",
		restricted: []string{},
		preferred:  []string{},
		attributes: map[string]any{},
	}
}

func (b *WorkerBuilder) WithID(id string) *WorkerBuilder {
	b.id = id
	return b
}

func (b *WorkerBuilder) WithName(name string) *WorkerBuilder {
	b.name = name
	return b
}

func (b *WorkerBuilder) WithWorkerType(workerType string) *WorkerBuilder {
	b.workerType = workerType
	return b
}

func (b *WorkerBuilder) WithRestricted(shiftTypeIDs ...string) *WorkerBuilder {
	b.restricted = shiftTypeIDs
	return b
}

func (b *WorkerBuilder) WithPreferred(shiftTypeIDs ...string) *WorkerBuilder {
	b.preferred = shiftTypeIDs
	return b
}

func (b *WorkerBuilder) WithAttributes(attrs map[string]any) *WorkerBuilder {
	b.attributes = attrs
	return b
}

// Build constructs the Worker, validating its invariants.
func (b *WorkerBuilder) Build() (entity.Worker, error) {
	return entity.NewWorker(b.id, b.name, b.workerType, b.restricted, b.preferred, b.attributes)
}

// MustBuild constructs the Worker, panicking on invalid fixture data.
func (b *WorkerBuilder) MustBuild() entity.Worker {
	w, err := b.Build()
	if err != nil {
		panic(err)
	}
	return w
}

// ShiftTypeBuilder builds ShiftType entities with a fluent interface.
type ShiftTypeBuilder struct {
	id              string
	name            string
	category        string
	startTime       string
	endTime         string
	durationHours   float64
	isUndesirable   bool
	workersRequired int
	applicableDays  []entity.Weekday
	requiredAttrs   map[string]any
}

// NewShiftTypeBuilder creates a new ShiftTypeBuilder with sensible defaults.
func NewShiftTypeBuilder() *ShiftTypeBuilder {
	return &ShiftTypeBuilder{
		id:              "day",
		name:            "Day Shift",
		category:        "general",
		startTime:       "08:00",
		endTime:         "16:00",
		durationHours:   8,
		workersRequired: 1,
	}
}

func (b *ShiftTypeBuilder) WithID(id string) *ShiftTypeBuilder {
	b.id = id
	return b
}

func (b *ShiftTypeBuilder) WithName(name string) *ShiftTypeBuilder {
	b.name = name
	return b
}

func (b *ShiftTypeBuilder) WithCategory(category string) *ShiftTypeBuilder {
	b.category = category
	return b
}

func (b *ShiftTypeBuilder) WithWindow(start, end string) *ShiftTypeBuilder {
	b.startTime = start
	b.endTime = end
	return b
}

func (b *ShiftTypeBuilder) WithDurationHours(hours float64) *ShiftTypeBuilder {
	b.durationHours = hours
	return b
}

func (b *ShiftTypeBuilder) WithUndesirable(undesirable bool) *ShiftTypeBuilder {
	b.isUndesirable = undesirable
	return b
}

func (b *ShiftTypeBuilder) WithWorkersRequired(n int) *ShiftTypeBuilder {
	b.workersRequired = n
	return b
}

func (b *ShiftTypeBuilder) WithApplicableDays(days ...entity.Weekday) *ShiftTypeBuilder {
	b.applicableDays = days
	return b
}

func (b *ShiftTypeBuilder) WithRequiredAttrs(attrs map[string]any) *ShiftTypeBuilder {
	b.requiredAttrs = attrs
	return b
}

// Build constructs the ShiftType, validating its invariants.
func (b *ShiftTypeBuilder) Build() (entity.ShiftType, error) {
	return entity.NewShiftType(b.id, b.name, b.category, b.startTime, b.endTime,
		b.durationHours, b.isUndesirable, b.workersRequired, b.applicableDays, b.requiredAttrs)
}

// MustBuild constructs the ShiftType, panicking on invalid fixture data.
func (b *ShiftTypeBuilder) MustBuild() entity.ShiftType {
	st, err := b.Build()
	if err != nil {
		panic(err)
	}
	return st
}

// AvailabilityBuilder builds Availability records with a fluent interface.
type AvailabilityBuilder struct {
	workerID    string
	start       time.Time
	end         time.Time
	kind        entity.AvailabilityKind
	shiftTypeID string
}

// NewAvailabilityBuilder creates a new AvailabilityBuilder with sensible
// defaults: a one-day available window starting now.
func NewAvailabilityBuilder() *AvailabilityBuilder {
	now := time.Now().UTC()
	return &AvailabilityBuilder{
		workerID: "worker-1",
		start:    now,
		end:      now.AddDate(0, 0, 1),
		kind:     entity.Available,
	}
}

func (b *AvailabilityBuilder) WithWorkerID(workerID string) *AvailabilityBuilder {
	b.workerID = workerID
	return b
}

func (b *AvailabilityBuilder) WithRange(start, end time.Time) *AvailabilityBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *AvailabilityBuilder) WithKind(kind entity.AvailabilityKind) *AvailabilityBuilder {
	b.kind = kind
	return b
}

func (b *AvailabilityBuilder) WithShiftTypeID(shiftTypeID string) *AvailabilityBuilder {
	b.shiftTypeID = shiftTypeID
	return b
}

// Build constructs the Availability, validating its invariants.
func (b *AvailabilityBuilder) Build() (entity.Availability, error) {
	return entity.NewAvailability(b.workerID, b.start, b.end, b.kind, b.shiftTypeID)
}

// MustBuild constructs the Availability, panicking on invalid fixture data.
func (b *AvailabilityBuilder) MustBuild() entity.Availability {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}

// WorkerRequestBuilder builds WorkerRequest records with a fluent interface.
type WorkerRequestBuilder struct {
	workerID    string
	shiftTypeID string
	start       time.Time
	end         time.Time
	polarity    entity.RequestPolarity
	priority    int
}

// NewWorkerRequestBuilder creates a new WorkerRequestBuilder with sensible
// defaults: a positive, one-day request starting now at priority 1.
func NewWorkerRequestBuilder() *WorkerRequestBuilder {
	now := time.Now().UTC()
	return &WorkerRequestBuilder{
		workerID:    "worker-1",
		shiftTypeID: "day",
		start:       now,
		end:         now.AddDate(0, 0, 1),
		polarity:    entity.Positive,
		priority:    1,
	}
}

func (b *WorkerRequestBuilder) WithWorkerID(workerID string) *WorkerRequestBuilder {
	b.workerID = workerID
	return b
}

func (b *WorkerRequestBuilder) WithShiftTypeID(shiftTypeID string) *WorkerRequestBuilder {
	b.shiftTypeID = shiftTypeID
	return b
}

func (b *WorkerRequestBuilder) WithRange(start, end time.Time) *WorkerRequestBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *WorkerRequestBuilder) WithPolarity(polarity entity.RequestPolarity) *WorkerRequestBuilder {
	b.polarity = polarity
	return b
}

func (b *WorkerRequestBuilder) WithPriority(priority int) *WorkerRequestBuilder {
	b.priority = priority
	return b
}

// Build constructs the WorkerRequest, validating its invariants.
func (b *WorkerRequestBuilder) Build() (entity.WorkerRequest, error) {
	return entity.NewWorkerRequest(b.workerID, b.shiftTypeID, b.start, b.end, b.polarity, b.priority)
}

// MustBuild constructs the WorkerRequest, panicking on invalid fixture data.
func (b *WorkerRequestBuilder) MustBuild() entity.WorkerRequest {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// ScheduleBuilder builds Schedule entities with a fluent interface.
type ScheduleBuilder struct {
	scheduleID string
	startDate  time.Time
	endDate    time.Time
	periodType string
	periods    []entity.PeriodAssignment
	workers    []entity.Worker
	shiftTypes []entity.ShiftType
}

// NewScheduleBuilder creates a new ScheduleBuilder with sensible defaults: a
// single-week schedule with no periods, workers, or shift types.
func NewScheduleBuilder() *ScheduleBuilder {
	now := time.Now().UTC()
	return &ScheduleBuilder{
		scheduleID: "schedule-1",
		startDate:  now,
		endDate:    now.AddDate(0, 0, 7),
		periodType: "weekly",
	}
}

func (b *ScheduleBuilder) WithScheduleID(id string) *ScheduleBuilder {
	b.scheduleID = id
	return b
}

func (b *ScheduleBuilder) WithDateRange(start, end time.Time) *ScheduleBuilder {
	b.startDate = start
	b.endDate = end
	return b
}

func (b *ScheduleBuilder) WithPeriodType(periodType string) *ScheduleBuilder {
	b.periodType = periodType
	return b
}

func (b *ScheduleBuilder) WithPeriods(periods ...entity.PeriodAssignment) *ScheduleBuilder {
	b.periods = periods
	return b
}

func (b *ScheduleBuilder) WithWorkers(workers ...entity.Worker) *ScheduleBuilder {
	b.workers = workers
	return b
}

func (b *ScheduleBuilder) WithShiftTypes(shiftTypes ...entity.ShiftType) *ScheduleBuilder {
	b.shiftTypes = shiftTypes
	return b
}

// Build constructs the Schedule, validating its invariants.
func (b *ScheduleBuilder) Build() (entity.Schedule, error) {
	return entity.NewSchedule(b.scheduleID, b.startDate, b.endDate, b.periodType, b.periods, b.workers, b.shiftTypes)
}

// MustBuild constructs the Schedule, panicking on invalid fixture data.
func (b *ScheduleBuilder) MustBuild() entity.Schedule {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// SolveJobBuilder builds repository.SolveJob records with a fluent interface.
type SolveJobBuilder struct {
	id            uuid.UUID
	scheduleID    string
	status        repository.SolveJobStatus
	payload       []byte
	resultSummary string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSolveJobBuilder creates a new SolveJobBuilder with sensible defaults: a
// freshly pending job with a random ID.
func NewSolveJobBuilder() *SolveJobBuilder {
	now := time.Now().UTC()
	return &SolveJobBuilder{
		id:         uuid.New(),
		scheduleID: "schedule-1",
		status:     repository.SolveJobPending,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (b *SolveJobBuilder) WithID(id uuid.UUID) *SolveJobBuilder {
	b.id = id
	return b
}

func (b *SolveJobBuilder) WithScheduleID(scheduleID string) *SolveJobBuilder {
	b.scheduleID = scheduleID
	return b
}

func (b *SolveJobBuilder) WithStatus(status repository.SolveJobStatus) *SolveJobBuilder {
	b.status = status
	return b
}

func (b *SolveJobBuilder) WithPayload(payload []byte) *SolveJobBuilder {
	b.payload = payload
	return b
}

func (b *SolveJobBuilder) WithResultSummary(summary string) *SolveJobBuilder {
	b.resultSummary = summary
	return b
}

func (b *SolveJobBuilder) WithCreatedAt(t time.Time) *SolveJobBuilder {
	b.createdAt = t
	return b
}

func (b *SolveJobBuilder) WithUpdatedAt(t time.Time) *SolveJobBuilder {
	b.updatedAt = t
	return b
}

// Build constructs the SolveJob. Unlike the entity builders above, SolveJob
// is a plain record with no constructor-level invariants to enforce.
func (b *SolveJobBuilder) Build() repository.SolveJob {
	return repository.SolveJob{
		ID:            b.id,
		ScheduleID:    b.scheduleID,
		Status:        b.status,
		Payload:       b.payload,
		ResultSummary: b.resultSummary,
		CreatedAt:     b.createdAt,
		UpdatedAt:     b.updatedAt,
	}
}
