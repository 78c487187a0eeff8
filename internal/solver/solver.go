// Package solver is the core's single programmatic entry point: Solve wires
// the Variable Registry, the pluggable Constraint Set, the Objective
// Compiler, and the Solver Driver together over one SolverAdapter backend
// via a single solve(inputs, config) operation. All file/format/transport
// responsibilities live outside this package.
package solver

import (
	"context"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/constraint"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/feasibility"
	"github.com/schedcu/solver/internal/solver/objective"
	"github.com/schedcu/solver/internal/solver/registry"
	"github.com/schedcu/solver/internal/solvererr"
)

// recognizedConstraintIDs is the enumerated set a Config's ConstraintSpecs
// may key into; anything else is a ConfigurationError during setup.
var recognizedConstraintIDs = map[string]struct{}{
	"coverage":     {},
	"restriction":  {},
	"availability": {},
	"fairness":     {},
	"frequency":    {},
	"max_absence":  {},
	"sequence":     {},
}

// Inputs bundles everything one solve needs about the scheduling population.
type Inputs struct {
	ScheduleID      string
	Workers         []entity.Worker
	ShiftTypes      []entity.ShiftType
	PeriodDates     []PeriodDates
	Availabilities  []entity.Availability
	WorkerRequests  []entity.WorkerRequest
}

// PeriodDates is one (start, end) pair; Solve assigns the period index from
// position in the slice.
type PeriodDates struct {
	Start time.Time
	End   time.Time
}

// Config bundles the per-solve constraint policy and solver parameters.
// Zero values for the numeric fields are replaced with their documented
// defaults by Solve.
type Config struct {
	ConstraintSpecs   map[string]entity.ConstraintSpec
	TimeLimitSeconds  int
	NumWorkers        int
	RelativeGap       float64
	LogSearchProgress bool
	ThrottleSeconds   float64
	OnProgress        func(driver.ProgressReport)

	// Cancel requests cooperative solver stop when it reports Done.
	Cancel context.Context
}

// Result is the outcome of one solve: schedule and objective_value are
// non-nil only when success is true.
type Result struct {
	Success           bool
	Status            driver.TerminalStatus
	Schedule          *entity.Schedule
	ObjectiveValue    *float64
	SolveTimeSeconds  float64
	FeasibilityIssues []solvererr.IssueRecord
}

const (
	defaultTimeLimitSeconds = 60
	defaultNumWorkers       = 8
)

// Solve runs one complete solve: it validates configuration, builds the
// periods and the Variable Registry, applies every enabled constraint in
// a fixed order, compiles the objective, and drives adapter to a terminal
// status. adapter is the caller-supplied SolverAdapter backend; the core
// ships no production adapter (see internal/solver/cpsat/refsolver for a
// reference implementation usable in tests).
func Solve(adapter driver.SolverAdapter, inputs Inputs, config Config) (Result, error) {
	for id := range config.ConstraintSpecs {
		if _, ok := recognizedConstraintIDs[id]; !ok {
			return Result{}, solvererr.NewConfigurationError("constraint_specs", "unknown constraint id: "+id)
		}
	}

	periods := make([]entity.Period, len(inputs.PeriodDates))
	for i, pd := range inputs.PeriodDates {
		p, err := entity.NewPeriod(i, pd.Start, pd.End)
		if err != nil {
			return Result{}, err
		}
		periods[i] = p
	}

	reg := registry.New(adapter, inputs.Workers, len(periods), inputs.ShiftTypes)

	ctx := constraint.Context{
		Workers:        inputs.Workers,
		ShiftTypes:     inputs.ShiftTypes,
		Periods:        periods,
		Availabilities: inputs.Availabilities,
		WorkerRequests: inputs.WorkerRequests,
	}

	constraints, err := buildConstraints(config.ConstraintSpecs)
	if err != nil {
		return Result{}, err
	}
	for _, c := range constraints {
		if err := c.Apply(adapter, reg, ctx); err != nil {
			return Result{}, err
		}
	}

	objective.Install(adapter, constraints)

	params := driver.SolveParams{
		TimeLimitSeconds:  withDefault(config.TimeLimitSeconds, defaultTimeLimitSeconds),
		NumWorkers:        withDefault(config.NumWorkers, defaultNumWorkers),
		RelativeGap:       config.RelativeGap,
		LogSearchProgress: config.LogSearchProgress,
		ThrottleSeconds:   config.ThrottleSeconds,
		OnProgress:        config.OnProgress,
		Cancel:            config.Cancel,
	}

	status, schedule, wallTime, obj, err := driver.Run(adapter, reg, params, inputs.ScheduleID, periods, inputs.Workers, inputs.ShiftTypes)
	if err != nil {
		if _, ok := err.(*solvererr.SolverError); ok {
			return Result{
				Success:          false,
				Status:           status,
				SolveTimeSeconds: wallTime,
			}, nil
		}
		return Result{}, err
	}

	if status == driver.Infeasible {
		issues := feasibility.Check(feasibility.Inputs{
			Workers:        inputs.Workers,
			ShiftTypes:     inputs.ShiftTypes,
			Periods:        periods,
			Availabilities: inputs.Availabilities,
		}, feasibility.DefaultStrategies())
		return Result{
			Success:           false,
			Status:            status,
			SolveTimeSeconds:  wallTime,
			FeasibilityIssues: issues,
		}, nil
	}

	return Result{
		Success:          true,
		Status:           status,
		Schedule:         schedule,
		ObjectiveValue:   obj,
		SolveTimeSeconds: wallTime,
	}, nil
}

// buildConstraints instantiates the seven built-in constraint variants in
// their fixed, spec-defined registration order, applying each id's
// configured ConstraintSpec or entity.DefaultConstraintSpec() when absent.
func buildConstraints(specs map[string]entity.ConstraintSpec) ([]constraint.Constraint, error) {
	specFor := func(id string) entity.ConstraintSpec {
		if s, ok := specs[id]; ok {
			return s
		}
		return entity.DefaultConstraintSpec()
	}

	return []constraint.Constraint{
		constraint.NewCoverage(specFor("coverage")),
		constraint.NewRestriction(specFor("restriction")),
		constraint.NewAvailability(specFor("availability")),
		constraint.NewFairness(specFor("fairness")),
		constraint.NewFrequency(specFor("frequency")),
		constraint.NewMaxAbsence(specFor("max_absence")),
		constraint.NewSequence(specFor("sequence")),
	}, nil
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
