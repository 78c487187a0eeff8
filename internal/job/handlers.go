package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/schedcu/solver/internal/logger"
	"github.com/schedcu/solver/internal/repository"
	"github.com/schedcu/solver/internal/solver"
	"github.com/schedcu/solver/internal/solver/cpsat/refsolver"
)

// JobHandlers manages solve job execution handlers.
type JobHandlers struct {
	solveJobs repository.SolveJobRepository
	schedules repository.ScheduleRepository
	log       *zap.SugaredLogger
}

// NewJobHandlers creates a new job handlers instance. log may be nil, in
// which case a no-op logger is used.
func NewJobHandlers(solveJobs repository.SolveJobRepository, schedules repository.ScheduleRepository, log *zap.SugaredLogger) *JobHandlers {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &JobHandlers{solveJobs: solveJobs, schedules: schedules, log: log}
}

// RegisterHandlers registers all job handlers with the Asynq mux.
func (h *JobHandlers) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeSolveSchedule, h.HandleSolve)
}

// HandleSolve runs one solve job to completion: it marks the job running,
// invokes the solver core with a fresh reference adapter, and records the
// outcome (a persisted schedule on success, a result summary either way).
func (h *JobHandlers) HandleSolve(ctx context.Context, t *asynq.Task) error {
	var payload SolvePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal solve payload: %w", asynq.SkipRetry)
	}

	start := time.Now()
	h.log.Infow("starting solve job", "job_id", payload.JobID, "schedule_id", payload.ScheduleID)

	job, err := h.solveJobs.GetByID(ctx, payload.JobID)
	if err != nil {
		return fmt.Errorf("solve job not found: %w", err)
	}
	job.Status = repository.SolveJobRunning
	job.UpdatedAt = time.Now().UTC()
	if err := h.solveJobs.Update(ctx, job); err != nil {
		h.log.Warnw("failed to mark solve job running", "job_id", payload.JobID, "error", err)
	}

	adapter := refsolver.New()
	result, err := solver.Solve(adapter, payload.Inputs, solver.Config{
		ConstraintSpecs:  payload.ConstraintSpecs,
		TimeLimitSeconds: payload.TimeLimitSeconds,
		NumWorkers:       payload.NumWorkers,
		RelativeGap:      payload.RelativeGap,
	})

	elapsedMS := time.Since(start).Milliseconds()
	job.UpdatedAt = time.Now().UTC()
	if err != nil {
		job.Status = repository.SolveJobFailed
		job.ResultSummary = err.Error()
		_ = h.solveJobs.Update(ctx, job)
		logger.LogSolve(h.log, payload.ScheduleID, "error", elapsedMS, err)
		return fmt.Errorf("solve failed: %w", err)
	}

	if !result.Success {
		job.Status = repository.SolveJobFailed
		job.ResultSummary = fmt.Sprintf("status=%s issues=%d", result.Status, len(result.FeasibilityIssues))
		_ = h.solveJobs.Update(ctx, job)
		logger.LogSolve(h.log, payload.ScheduleID, result.Status.String(), elapsedMS, nil)
		return nil
	}

	if result.Schedule != nil {
		if err := h.schedules.Create(ctx, *result.Schedule); err != nil {
			job.Status = repository.SolveJobFailed
			job.ResultSummary = fmt.Sprintf("solved but failed to persist schedule: %v", err)
			_ = h.solveJobs.Update(ctx, job)
			return fmt.Errorf("failed to persist solved schedule: %w", err)
		}
	}

	job.Status = repository.SolveJobSucceeded
	job.ResultSummary = fmt.Sprintf("status=%s solve_time=%.2fs", result.Status, result.SolveTimeSeconds)
	if err := h.solveJobs.Update(ctx, job); err != nil {
		h.log.Warnw("failed to mark solve job succeeded", "job_id", payload.JobID, "error", err)
	}

	logger.LogSolve(h.log, payload.ScheduleID, result.Status.String(), elapsedMS, nil)
	return nil
}
