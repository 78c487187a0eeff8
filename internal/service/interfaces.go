package service

import (
	"context"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
	"github.com/schedcu/solver/internal/solver"
)

// SolveService coordinates running a solve over the persisted worker/shift
// population and storing its result.
type SolveService interface {
	SubmitSolve(ctx context.Context, req SubmitSolveRequest) (repository.SolveJob, error)
	GetJob(ctx context.Context, jobID string) (repository.SolveJob, error)
	SolveNow(ctx context.Context, req SubmitSolveRequest) (solver.Result, error)
}

// SubmitSolveRequest is the service-level request to run (or enqueue) a solve
// over a date range, loading the worker/shift-type/availability population
// from the repositories rather than taking it inline.
type SubmitSolveRequest struct {
	ScheduleID       string
	PeriodDates      []solver.PeriodDates
	ConstraintSpecs  map[string]entity.ConstraintSpec
	TimeLimitSeconds int
	NumWorkers       int
}
