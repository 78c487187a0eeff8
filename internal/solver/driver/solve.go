package driver

import (
	"math"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/registry"
	"github.com/schedcu/solver/internal/solvererr"
)

// Run drives adapter through one solve and, on Optimal or Feasible,
// extracts a fully populated entity.Schedule. It owns the only blocking
// point in the core: the call to adapter.Solve.
func Run(adapter SolverAdapter, reg *registry.Registry, params SolveParams, scheduleID string, periods []entity.Period, workers []entity.Worker, shiftTypes []entity.ShiftType) (TerminalStatus, *entity.Schedule, float64, *float64, error) {
	status, solution := adapter.Solve(params)

	wallTime := 0.0
	if solution != nil {
		wallTime = solution.WallTime()
	}

	switch status {
	case Optimal, Feasible:
		schedule, err := Extract(solution, reg, scheduleID, periods, workers, shiftTypes)
		if err != nil {
			return status, nil, wallTime, nil, err
		}
		obj := solution.ObjectiveValue()
		return status, schedule, wallTime, &obj, nil
	case Infeasible:
		return status, nil, wallTime, nil, nil
	case ModelInvalid, Unknown:
		return status, nil, wallTime, nil, solvererr.NewSolverError(status.String(), "solver did not produce a usable solution")
	default:
		return status, nil, wallTime, nil, solvererr.NewSolverError(status.String(), "unrecognized terminal status")
	}
}

// Extract walks every assignment variable in the registry and, for each one
// fixed to 1 in solution, produces a ShiftInstance placed in its period's
// PeriodAssignment. Concrete dates follow this rule: the first date
// in the period matching the shift type's
// ApplicableDays, or the period start when unrestricted. A shift requiring
// k > 1 workers yields k independent ShiftInstances on that same date, one
// per assigned worker.
func Extract(solution Solution, reg *registry.Registry, scheduleID string, periods []entity.Period, workers []entity.Worker, shiftTypes []entity.ShiftType) (*entity.Schedule, error) {
	periodAssignments := make([]entity.PeriodAssignment, len(periods))
	for i, p := range periods {
		pa, err := entity.NewPeriodAssignment(p.Index, p.Start, p.End)
		if err != nil {
			return nil, err
		}
		periodAssignments[i] = pa
	}

	shiftTypeByID := make(map[string]entity.ShiftType, len(shiftTypes))
	for _, st := range shiftTypes {
		shiftTypeByID[st.ID] = st
	}

	for _, entry := range reg.AllAssignmentVars() {
		if solution.ValueOf(entry.Var) != 1 {
			continue
		}
		st := shiftTypeByID[entry.ShiftTypeID]
		period := periods[entry.PeriodIndex]
		date, ok := period.FirstDateOnWeekday(st.ApplicableDays)
		if !ok {
			date = period.Start
		}
		periodAssignments[entry.PeriodIndex].Add(entry.WorkerID, entity.ShiftInstance{
			ShiftTypeID: entry.ShiftTypeID,
			PeriodIndex: entry.PeriodIndex,
			Date:        date,
			WorkerID:    entry.WorkerID,
		})
	}

	var start, end time.Time
	if len(periods) > 0 {
		start = periods[0].Start
		end = periods[len(periods)-1].End
	}

	schedule, err := entity.NewSchedule(scheduleID, start, end, "period", periodAssignments, workers, shiftTypes)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GapPercent computes the relative optimality gap, rounded to two decimals.
func GapPercent(objective, bestBound float64) float64 {
	denom := math.Max(1.0, math.Abs(objective))
	gap := math.Abs(objective-bestBound) / denom * 100
	return math.Round(gap*100) / 100
}
