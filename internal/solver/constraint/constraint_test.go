package constraint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/constraint"
	"github.com/schedcu/solver/internal/solver/cpsat/refsolver"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

func mustPeriod(t *testing.T, idx int, start string) entity.Period {
	t.Helper()
	s, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	p, err := entity.NewPeriod(idx, s, s.AddDate(0, 0, 6))
	require.NoError(t, err)
	return p
}

func solveAll(t *testing.T, a *refsolver.Adapter) (driver.TerminalStatus, driver.Solution) {
	t.Helper()
	return a.Solve(driver.SolveParams{TimeLimitSeconds: 5})
}

func TestCoverage_ForcesExactHeadcount(t *testing.T) {
	w1, _ := entity.NewWorker("W1", "W1", "staff", nil, nil, nil)
	st, err := entity.NewShiftType("s", "Shift", "", "08:00", "16:00", 8, false, 1, nil, nil)
	require.NoError(t, err)
	p := mustPeriod(t, 0, "2026-02-02")

	a := refsolver.New()
	reg := registry.New(a, []entity.Worker{w1}, 1, []entity.ShiftType{st})

	hard, err := entity.NewConstraintSpec(true, true, 100, nil)
	require.NoError(t, err)
	c := constraint.NewCoverage(hard)
	ctx := constraint.Context{Workers: []entity.Worker{w1}, ShiftTypes: []entity.ShiftType{st}, Periods: []entity.Period{p}}
	require.NoError(t, c.Apply(a, reg, ctx))

	status, solution := solveAll(t, a)
	require.Equal(t, driver.Optimal, status)

	v, err := reg.AssignmentVar("W1", 0, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(1), solution.ValueOf(v))
}

func TestCoverage_InfeasibleWhenUnderstaffed(t *testing.T) {
	w1, _ := entity.NewWorker("W1", "W1", "staff", nil, nil, nil)
	st, err := entity.NewShiftType("s", "Shift", "", "08:00", "16:00", 8, false, 2, nil, nil)
	require.NoError(t, err)
	p := mustPeriod(t, 0, "2026-02-02")

	a := refsolver.New()
	reg := registry.New(a, []entity.Worker{w1}, 1, []entity.ShiftType{st})

	hard, err := entity.NewConstraintSpec(true, true, 100, nil)
	require.NoError(t, err)
	c := constraint.NewCoverage(hard)
	ctx := constraint.Context{Workers: []entity.Worker{w1}, ShiftTypes: []entity.ShiftType{st}, Periods: []entity.Period{p}}
	require.NoError(t, c.Apply(a, reg, ctx))

	status, _ := solveAll(t, a)
	assert.Equal(t, driver.Infeasible, status)
}

func TestRestriction_ZeroesOutRestrictedAssignment(t *testing.T) {
	w1, err := entity.NewWorker("W1", "W1", "staff", []string{"night"}, nil, nil)
	require.NoError(t, err)
	night, err := entity.NewShiftType("night", "Night", "", "20:00", "04:00", 8, true, 1, nil, nil)
	require.NoError(t, err)
	p := mustPeriod(t, 0, "2026-02-02")

	a := refsolver.New()
	reg := registry.New(a, []entity.Worker{w1}, 1, []entity.ShiftType{night})

	hard, err := entity.NewConstraintSpec(true, true, 100, nil)
	require.NoError(t, err)
	c := constraint.NewRestriction(hard)
	ctx := constraint.Context{Workers: []entity.Worker{w1}, ShiftTypes: []entity.ShiftType{night}, Periods: []entity.Period{p}}
	require.NoError(t, c.Apply(a, reg, ctx))

	status, solution := solveAll(t, a)
	require.Equal(t, driver.Optimal, status)
	v, err := reg.AssignmentVar("W1", 0, "night")
	require.NoError(t, err)
	assert.Equal(t, int64(0), solution.ValueOf(v))
}

func TestAvailability_UnscopedBlocksAllShiftTypesInPeriod(t *testing.T) {
	w1, err := entity.NewWorker("W1", "W1", "staff", nil, nil, nil)
	require.NoError(t, err)
	day, err := entity.NewShiftType("day", "Day", "", "08:00", "16:00", 8, false, 1, nil, nil)
	require.NoError(t, err)
	night, err := entity.NewShiftType("night", "Night", "", "20:00", "04:00", 8, true, 1, nil, nil)
	require.NoError(t, err)
	p := mustPeriod(t, 0, "2026-02-02")
	unavail, err := entity.NewAvailability("W1", p.Start, p.End, entity.Unavailable, "")
	require.NoError(t, err)

	a := refsolver.New()
	shiftTypes := []entity.ShiftType{day, night}
	reg := registry.New(a, []entity.Worker{w1}, 1, shiftTypes)

	hard, err := entity.NewConstraintSpec(true, true, 100, nil)
	require.NoError(t, err)
	c := constraint.NewAvailability(hard)
	ctx := constraint.Context{
		Workers: []entity.Worker{w1}, ShiftTypes: shiftTypes, Periods: []entity.Period{p},
		Availabilities: []entity.Availability{unavail},
	}
	require.NoError(t, c.Apply(a, reg, ctx))

	status, solution := solveAll(t, a)
	require.Equal(t, driver.Optimal, status)
	for _, st := range shiftTypes {
		v, err := reg.AssignmentVar("W1", 0, st.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), solution.ValueOf(v))
	}
}

func TestFairness_NoOpWithFewerThanTwoWorkers(t *testing.T) {
	w1, err := entity.NewWorker("W1", "W1", "staff", nil, nil, nil)
	require.NoError(t, err)
	st, err := entity.NewShiftType("u", "U", "", "08:00", "16:00", 8, true, 1, nil, nil)
	require.NoError(t, err)
	p := mustPeriod(t, 0, "2026-02-02")

	a := refsolver.New()
	reg := registry.New(a, []entity.Worker{w1}, 1, []entity.ShiftType{st})

	soft, err := entity.NewConstraintSpec(true, false, 1000, nil)
	require.NoError(t, err)
	c := constraint.NewFairness(soft)
	ctx := constraint.Context{Workers: []entity.Worker{w1}, ShiftTypes: []entity.ShiftType{st}, Periods: []entity.Period{p}}
	require.NoError(t, c.Apply(a, reg, ctx))

	assert.Empty(t, c.Violations())
}
