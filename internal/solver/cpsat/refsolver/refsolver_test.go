package refsolver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/solver/cpsat/refsolver"
	"github.com/schedcu/solver/internal/solver/driver"
)

func TestAdapter_ForcedEqualityPropagates(t *testing.T) {
	a := refsolver.New()
	v := a.NewBoolVar("v")
	a.AddEquality([]driver.Var{v}, []int64{1}, 1)

	status, solution := a.Solve(driver.SolveParams{TimeLimitSeconds: 1})
	require.Equal(t, driver.Optimal, status)
	assert.Equal(t, int64(1), solution.ValueOf(v))
}

func TestAdapter_ConflictingEqualitiesAreInfeasible(t *testing.T) {
	a := refsolver.New()
	v := a.NewBoolVar("v")
	a.AddEquality([]driver.Var{v}, []int64{1}, 1)
	a.AddEquality([]driver.Var{v}, []int64{1}, 0)

	status, _ := a.Solve(driver.SolveParams{TimeLimitSeconds: 1})
	assert.Equal(t, driver.Infeasible, status)
}

func TestAdapter_OneMinusHasReificationPattern(t *testing.T) {
	a := refsolver.New()
	has := a.NewBoolVar("has")
	viol := a.NewBoolVar("viol")
	// viol = 1 - has
	a.AddEquality([]driver.Var{has, viol}, []int64{1, 1}, 1)
	a.AddEquality([]driver.Var{has}, []int64{1}, 0) // force has = 0

	status, solution := a.Solve(driver.SolveParams{TimeLimitSeconds: 1})
	require.Equal(t, driver.Optimal, status)
	assert.Equal(t, int64(0), solution.ValueOf(has))
	assert.Equal(t, int64(1), solution.ValueOf(viol))
}

func TestAdapter_BoolOrForcesAllZeroWhenTargetZero(t *testing.T) {
	a := refsolver.New()
	v1 := a.NewBoolVar("v1")
	v2 := a.NewBoolVar("v2")
	target := a.NewBoolVar("target")
	a.AddBoolOr(target, []driver.Var{v1, v2})
	a.AddEquality([]driver.Var{target}, []int64{1}, 0)

	status, solution := a.Solve(driver.SolveParams{TimeLimitSeconds: 1})
	require.Equal(t, driver.Optimal, status)
	assert.Equal(t, int64(0), solution.ValueOf(v1))
	assert.Equal(t, int64(0), solution.ValueOf(v2))
}

func TestAdapter_BoolAndForcesAllOneWhenTargetOne(t *testing.T) {
	a := refsolver.New()
	v1 := a.NewBoolVar("v1")
	v2 := a.NewBoolVar("v2")
	target := a.NewBoolVar("target")
	a.AddBoolAnd(target, []driver.Var{v1, v2})
	a.AddEquality([]driver.Var{target}, []int64{1}, 1)

	status, solution := a.Solve(driver.SolveParams{TimeLimitSeconds: 1})
	require.Equal(t, driver.Optimal, status)
	assert.Equal(t, int64(1), solution.ValueOf(v1))
	assert.Equal(t, int64(1), solution.ValueOf(v2))
}

func TestAdapter_MinimizeFindsOptimalNotJustFeasible(t *testing.T) {
	a := refsolver.New()
	v1 := a.NewBoolVar("v1")
	v2 := a.NewBoolVar("v2")
	// at least one must be 1
	a.AddGreaterOrEqual([]driver.Var{v1, v2}, []int64{1, 1}, 1)
	a.Minimize([]driver.Var{v1, v2}, []float64{1, 1})

	status, solution := a.Solve(driver.SolveParams{TimeLimitSeconds: 2})
	require.Equal(t, driver.Optimal, status)
	assert.Equal(t, 1.0, solution.ObjectiveValue())
}

func TestAdapter_RespectsCancellation(t *testing.T) {
	a := refsolver.New()
	// A handful of genuinely free variables with no propagation-forcing
	// constraint, so the search must branch rather than resolve instantly.
	vars := make([]driver.Var, 10)
	for i := range vars {
		vars[i] = a.NewBoolVar("v")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, _ := a.Solve(driver.SolveParams{TimeLimitSeconds: 5, Cancel: ctx})
	assert.Contains(t, []driver.TerminalStatus{driver.Unknown, driver.Feasible, driver.Optimal}, status)
}

func TestAdapter_TimeLimitReturnsPromptly(t *testing.T) {
	a := refsolver.New()
	start := time.Now()
	status, _ := a.Solve(driver.SolveParams{TimeLimitSeconds: 1})
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.Contains(t, []driver.TerminalStatus{driver.Optimal, driver.Feasible, driver.Unknown}, status)
}
