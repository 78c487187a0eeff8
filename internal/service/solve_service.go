package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/schedcu/solver/internal/job"
	"github.com/schedcu/solver/internal/metrics"
	"github.com/schedcu/solver/internal/repository"
	"github.com/schedcu/solver/internal/solver"
	"github.com/schedcu/solver/internal/solver/cpsat/refsolver"
	"github.com/schedcu/solver/internal/solvererr"
)

// DefaultSolveService loads the worker/shift-type/availability/request
// population from the repositories, then either runs the solver inline or
// enqueues it through the job scheduler.
type DefaultSolveService struct {
	workers        repository.WorkerRepository
	shiftTypes     repository.ShiftTypeRepository
	availabilities repository.AvailabilityRepository
	requests       repository.WorkerRequestRepository
	solveJobs      repository.SolveJobRepository
	scheduler      *job.JobScheduler
	metrics        *metrics.MetricsRegistry
}

// NewDefaultSolveService creates a new DefaultSolveService. metrics may be
// nil, in which case solve outcomes are not recorded.
func NewDefaultSolveService(
	workers repository.WorkerRepository,
	shiftTypes repository.ShiftTypeRepository,
	availabilities repository.AvailabilityRepository,
	requests repository.WorkerRequestRepository,
	solveJobs repository.SolveJobRepository,
	scheduler *job.JobScheduler,
	metricsRegistry *metrics.MetricsRegistry,
) *DefaultSolveService {
	return &DefaultSolveService{
		workers:        workers,
		shiftTypes:     shiftTypes,
		availabilities: availabilities,
		requests:       requests,
		solveJobs:      solveJobs,
		scheduler:      scheduler,
		metrics:        metricsRegistry,
	}
}

func (s *DefaultSolveService) buildInputs(ctx context.Context, req SubmitSolveRequest) (solver.Inputs, error) {
	workers, err := s.workers.ListAll(ctx)
	if err != nil {
		return solver.Inputs{}, fmt.Errorf("failed to load workers: %w", err)
	}
	shiftTypes, err := s.shiftTypes.ListAll(ctx)
	if err != nil {
		return solver.Inputs{}, fmt.Errorf("failed to load shift types: %w", err)
	}

	if len(req.PeriodDates) == 0 {
		return solver.Inputs{}, fmt.Errorf("at least one period is required")
	}
	start, end := req.PeriodDates[0].Start, req.PeriodDates[len(req.PeriodDates)-1].End

	availabilities, err := s.availabilities.ListByDateRange(ctx, start, end)
	if err != nil {
		return solver.Inputs{}, fmt.Errorf("failed to load availabilities: %w", err)
	}
	requests, err := s.requests.ListByDateRange(ctx, start, end)
	if err != nil {
		return solver.Inputs{}, fmt.Errorf("failed to load worker requests: %w", err)
	}

	return solver.Inputs{
		ScheduleID:     req.ScheduleID,
		Workers:        workers,
		ShiftTypes:     shiftTypes,
		PeriodDates:    req.PeriodDates,
		Availabilities: availabilities,
		WorkerRequests: requests,
	}, nil
}

// SolveNow runs the solve synchronously against a fresh reference adapter.
func (s *DefaultSolveService) SolveNow(ctx context.Context, req SubmitSolveRequest) (solver.Result, error) {
	if s.metrics != nil {
		s.metrics.IncrementActiveSolves("sync")
		defer s.metrics.DecrementActiveSolves("sync")
	}

	inputs, err := s.buildInputs(ctx, req)
	if err != nil {
		return solver.Result{}, err
	}

	adapter := refsolver.New()
	result, err := solver.Solve(adapter, inputs, solver.Config{
		ConstraintSpecs:  req.ConstraintSpecs,
		TimeLimitSeconds: req.TimeLimitSeconds,
		NumWorkers:       req.NumWorkers,
		Cancel:           ctx,
	})
	if s.metrics != nil {
		s.metrics.RecordSolve(result.Status.String(), result.SolveTimeSeconds, issueCountsByCode(result.FeasibilityIssues))
	}
	return result, err
}

func issueCountsByCode(issues []solvererr.IssueRecord) map[string]int {
	counts := make(map[string]int, len(issues))
	for _, issue := range issues {
		counts[issue.Code]++
	}
	return counts
}

// SubmitSolve creates a pending SolveJob record and enqueues the solve
// through the job scheduler, returning immediately.
func (s *DefaultSolveService) SubmitSolve(ctx context.Context, req SubmitSolveRequest) (repository.SolveJob, error) {
	inputs, err := s.buildInputs(ctx, req)
	if err != nil {
		return repository.SolveJob{}, err
	}

	now := time.Now().UTC()
	solveJob := repository.SolveJob{
		ID:         uuid.New(),
		ScheduleID: req.ScheduleID,
		Status:     repository.SolveJobPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	payload := job.SolvePayload{
		JobID:            solveJob.ID,
		ScheduleID:       req.ScheduleID,
		Inputs:           inputs,
		ConstraintSpecs:  req.ConstraintSpecs,
		TimeLimitSeconds: req.TimeLimitSeconds,
		NumWorkers:       req.NumWorkers,
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return repository.SolveJob{}, fmt.Errorf("failed to marshal solve payload: %w", err)
	}
	solveJob.Payload = payloadJSON

	if err := s.solveJobs.Create(ctx, solveJob); err != nil {
		return repository.SolveJob{}, fmt.Errorf("failed to record solve job: %w", err)
	}

	if _, err := s.scheduler.EnqueueSolve(ctx, payload); err != nil {
		return repository.SolveJob{}, fmt.Errorf("failed to enqueue solve job: %w", err)
	}

	return solveJob, nil
}

// GetJob retrieves a solve job's current status.
func (s *DefaultSolveService) GetJob(ctx context.Context, jobID string) (repository.SolveJob, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return repository.SolveJob{}, fmt.Errorf("invalid job id: %w", err)
	}
	return s.solveJobs.GetByID(ctx, id)
}
