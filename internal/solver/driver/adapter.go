// Package driver owns the solver lifecycle: it configures a SolverAdapter,
// drives it with a progress/cancellation callback, interprets the terminal
// status, and reconstructs a Schedule from the returned assignment. It is
// grounded on the original solver/progress_callback.py's
// SolverProgressCallback and result.py's SolverResult.
package driver

import (
	"context"
)

// Var is an opaque handle to a decision variable. It is a type alias (not a
// defined type) for `any`, matching registry.Var, so that registry,
// constraint, and driver can all depend on a shared adapter abstraction
// without a package cycle: a SolverAdapter implementation's variable-typed
// methods satisfy registry.Builder and constraint.Constraint's driver.Var
// parameters interchangeably, since both aliases resolve to the identical
// type `any`.
type Var = any

// TerminalStatus is the outcome the underlying solver reports when solve()
// returns.
type TerminalStatus int

const (
	Unknown TerminalStatus = iota
	Optimal
	Feasible
	Infeasible
	ModelInvalid
)

func (s TerminalStatus) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Feasible:
		return "Feasible"
	case Infeasible:
		return "Infeasible"
	case ModelInvalid:
		return "ModelInvalid"
	default:
		return "Unknown"
	}
}

// ProgressReport is delivered to a caller-supplied progress handler at most
// once per throttle_seconds wall-clock interval while the solver searches.
type ProgressReport struct {
	Phase          string
	SolutionsFound int
	ObjectiveValue float64
	BestBound      float64
	GapPercent     float64
	WallTime       float64
}

// SolveParams configures one invocation of SolverAdapter.Solve.
type SolveParams struct {
	TimeLimitSeconds  int
	NumWorkers        int
	RelativeGap       float64
	LogSearchProgress bool

	// ThrottleSeconds bounds how often OnProgress fires; defaults to 1.0
	// when zero.
	ThrottleSeconds float64

	// OnProgress is invoked serially, on the adapter's own callback thread,
	// for each incumbent solution found. It must be non-blocking and
	// side-effect-light per the concurrency model.
	OnProgress func(ProgressReport)

	// Cancel, when non-nil and reporting Done, requests the solver stop at
	// the next opportunity. Cancellation is cooperative: Solve still blocks
	// until the adapter's own loop notices and returns its best incumbent.
	Cancel context.Context
}

// Solution is the read-only result handed back once SolverAdapter.Solve
// returns a terminal status.
type Solution interface {
	ValueOf(v Var) int64
	ObjectiveValue() float64
	BestBound() float64
	WallTime() float64
}

// SolverAdapter abstracts any CP-SAT-style backend. The core never depends
// on a concrete solver implementation, so this package ships with no
// production adapter, only the interface and a reference implementation
// the tests in internal/solver/cpsat/refsolver exercise.
type SolverAdapter interface {
	NewBoolVar(name string) Var
	NewIntVar(lo, hi int64, name string) Var

	// AddEquality posts sum(coeffs[i] * vars[i]) == target.
	AddEquality(vars []Var, coeffs []int64, target int64)
	// AddGreaterOrEqual posts sum(coeffs[i] * vars[i]) >= target.
	AddGreaterOrEqual(vars []Var, coeffs []int64, target int64)

	// AddMaxEquality posts target == max(vars...).
	AddMaxEquality(target Var, vars []Var)
	// AddMinEquality posts target == min(vars...).
	AddMinEquality(target Var, vars []Var)

	// AddImplication posts antecedent -> consequent.
	AddImplication(antecedent, consequent Var)
	// AddBoolAnd posts target == AND(vars...) via reification.
	AddBoolAnd(target Var, vars []Var)
	// AddBoolOr posts target == OR(vars...) via reification.
	AddBoolOr(target Var, vars []Var)

	Minimize(vars []Var, coeffs []float64)

	Solve(params SolveParams) (TerminalStatus, Solution)
}
