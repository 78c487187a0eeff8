package solver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver"
	"github.com/schedcu/solver/internal/solver/cpsat/refsolver"
	"github.com/schedcu/solver/internal/solver/driver"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func defaultConfig() solver.Config {
	return solver.Config{
		ConstraintSpecs:  map[string]entity.ConstraintSpec{},
		TimeLimitSeconds: 5,
	}
}

// Scenario A -- minimal feasible.
func TestSolve_MinimalFeasible(t *testing.T) {
	w1, err := entity.NewWorker("W1", "Worker One", "staff", nil, nil, nil)
	require.NoError(t, err)
	st, err := entity.NewShiftType("s", "Shift", "", "08:00", "16:00", 8, false, 1, nil, nil)
	require.NoError(t, err)

	inputs := solver.Inputs{
		ScheduleID: "sched-a",
		Workers:    []entity.Worker{w1},
		ShiftTypes: []entity.ShiftType{st},
		PeriodDates: []solver.PeriodDates{
			{Start: day("2026-02-02"), End: day("2026-02-08")},
		},
	}

	result, err := solver.Solve(refsolver.New(), inputs, defaultConfig())
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, driver.Optimal, result.Status)
	require.NotNil(t, result.Schedule)

	shifts := result.Schedule.Periods[0].ShiftsFor("W1")
	require.Len(t, shifts, 1)
	assert.Equal(t, "s", shifts[0].ShiftTypeID)
	assert.Equal(t, 0, shifts[0].PeriodIndex)
	assert.True(t, shifts[0].Date.Equal(day("2026-02-02")))
}

// Scenario B -- coverage infeasibility.
func TestSolve_CoverageInfeasible(t *testing.T) {
	w1, err := entity.NewWorker("W1", "Worker One", "staff", nil, nil, nil)
	require.NoError(t, err)
	st, err := entity.NewShiftType("s", "Shift", "", "08:00", "16:00", 8, false, 2, nil, nil)
	require.NoError(t, err)

	inputs := solver.Inputs{
		ScheduleID: "sched-b",
		Workers:    []entity.Worker{w1},
		ShiftTypes: []entity.ShiftType{st},
		PeriodDates: []solver.PeriodDates{
			{Start: day("2026-02-02"), End: day("2026-02-08")},
		},
	}

	result, err := solver.Solve(refsolver.New(), inputs, defaultConfig())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, driver.Infeasible, result.Status)
	assert.NotEmpty(t, result.FeasibilityIssues)
	assert.Equal(t, "coverage", result.FeasibilityIssues[0].Code)
}

// Scenario C -- restriction honored.
func TestSolve_RestrictionHonored(t *testing.T) {
	w1, err := entity.NewWorker("W1", "Worker One", "staff", []string{"night"}, nil, nil)
	require.NoError(t, err)
	w2, err := entity.NewWorker("W2", "Worker Two", "staff", nil, nil, nil)
	require.NoError(t, err)
	dayShift, err := entity.NewShiftType("day", "Day", "", "08:00", "16:00", 8, false, 1, nil, nil)
	require.NoError(t, err)
	nightShift, err := entity.NewShiftType("night", "Night", "", "20:00", "04:00", 8, true, 1, nil, nil)
	require.NoError(t, err)

	inputs := solver.Inputs{
		ScheduleID: "sched-c",
		Workers:    []entity.Worker{w1, w2},
		ShiftTypes: []entity.ShiftType{dayShift, nightShift},
		PeriodDates: []solver.PeriodDates{
			{Start: day("2026-02-02"), End: day("2026-02-08")},
		},
	}

	result, err := solver.Solve(refsolver.New(), inputs, defaultConfig())
	require.NoError(t, err)
	require.True(t, result.Success)

	nightShifts := result.Schedule.Periods[0].ShiftsFor("W1")
	for _, s := range nightShifts {
		assert.NotEqual(t, "night", s.ShiftTypeID)
	}
}

// Scenario D -- availability scoped.
func TestSolve_AvailabilityScoped(t *testing.T) {
	w1, err := entity.NewWorker("W1", "Worker One", "staff", nil, nil, nil)
	require.NoError(t, err)
	w2, err := entity.NewWorker("W2", "Worker Two", "staff", nil, nil, nil)
	require.NoError(t, err)
	dayShift, err := entity.NewShiftType("day", "Day", "", "08:00", "16:00", 8, false, 1, nil, nil)
	require.NoError(t, err)
	nightShift, err := entity.NewShiftType("night", "Night", "", "20:00", "04:00", 8, true, 1, nil, nil)
	require.NoError(t, err)

	period0 := solver.PeriodDates{Start: day("2026-02-02"), End: day("2026-02-08")}
	period1 := solver.PeriodDates{Start: day("2026-02-09"), End: day("2026-02-15")}

	unavailW1, err := entity.NewAvailability("W1", period0.Start, period0.End, entity.Unavailable, "")
	require.NoError(t, err)
	unavailW2Night, err := entity.NewAvailability("W2", period1.Start, period1.End, entity.Unavailable, "night")
	require.NoError(t, err)

	inputs := solver.Inputs{
		ScheduleID:     "sched-d",
		Workers:        []entity.Worker{w1, w2},
		ShiftTypes:     []entity.ShiftType{dayShift, nightShift},
		PeriodDates:    []solver.PeriodDates{period0, period1},
		Availabilities: []entity.Availability{unavailW1, unavailW2Night},
	}

	result, err := solver.Solve(refsolver.New(), inputs, defaultConfig())
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Empty(t, result.Schedule.Periods[0].ShiftsFor("W1"))
	for _, s := range result.Schedule.Periods[1].ShiftsFor("W2") {
		assert.NotEqual(t, "night", s.ShiftTypeID)
	}
}

// Scenario E -- fairness minimizes spread.
func TestSolve_FairnessMinimizesSpread(t *testing.T) {
	workers := make([]entity.Worker, 4)
	for i := range workers {
		w, err := entity.NewWorker(
			[]string{"W1", "W2", "W3", "W4"}[i],
			[]string{"W1", "W2", "W3", "W4"}[i],
			"staff", nil, nil, nil,
		)
		require.NoError(t, err)
		workers[i] = w
	}
	st, err := entity.NewShiftType("u", "Undesirable", "", "20:00", "04:00", 8, true, 1, nil, nil)
	require.NoError(t, err)

	periods := make([]solver.PeriodDates, 8)
	start := day("2026-02-02")
	for i := range periods {
		periods[i] = solver.PeriodDates{
			Start: start.AddDate(0, 0, 7*i),
			End:   start.AddDate(0, 0, 7*i+6),
		}
	}

	weight, err := entity.NewConstraintSpec(true, false, 1000, nil)
	require.NoError(t, err)

	inputs := solver.Inputs{
		ScheduleID:  "sched-e",
		Workers:     workers,
		ShiftTypes:  []entity.ShiftType{st},
		PeriodDates: periods,
	}
	config := defaultConfig()
	config.ConstraintSpecs["fairness"] = weight
	config.TimeLimitSeconds = 20

	result, err := solver.Solve(refsolver.New(), inputs, config)
	require.NoError(t, err)
	require.True(t, result.Success)

	counts := make(map[string]int)
	for _, p := range result.Schedule.Periods {
		for _, w := range workers {
			counts[w.ID] += len(p.ShiftsFor(w.ID))
		}
	}
	min, max := counts["W1"], counts["W1"]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	assert.LessOrEqual(t, max-min, 1)
}

func TestSolve_RejectsUnknownConstraintID(t *testing.T) {
	config := defaultConfig()
	config.ConstraintSpecs["not_a_real_constraint"] = entity.DefaultConstraintSpec()

	_, err := solver.Solve(refsolver.New(), solver.Inputs{ScheduleID: "sched-x"}, config)
	require.Error(t, err)
}
