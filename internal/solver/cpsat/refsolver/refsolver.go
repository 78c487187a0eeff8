// Package refsolver is a small, exhaustive constraint solver that implements
// driver.SolverAdapter without depending on any external CP-SAT library. The
// spec treats providing a production CP-SAT backend as an explicit
// non-goal; this package exists so the core's tests (and any caller that
// wants a pure-Go fallback for small problems) have a concrete adapter to
// exercise, grounded on the mutex-protected in-memory fake pattern the
// teacher uses for its repository mocks (tests/mocks/mocks.go).
//
// It is not meant to scale to production-size rosters: it performs
// backtracking search with unit propagation over linear equalities, which is
// adequate for the handful of workers/periods/shift-types a unit test seeds,
// but is exponential in the worst case like any complete ILP search without
// a real relaxation-based bound.
package refsolver

import (
	"context"
	"time"

	"github.com/schedcu/solver/internal/solver/driver"
)

type varKind int

const (
	boolVar varKind = iota
	intVar
)

type variable struct {
	id   int
	name string
	kind varKind
	lo   int64
	hi   int64
}

// conKind enumerates the seven SolverAdapter primitives this package must
// support propagation and final-check logic for.
type conKind int

const (
	kEquality conKind = iota
	kGreaterOrEqual
	kMaxEquality
	kMinEquality
	kImplication
	kBoolAnd
	kBoolOr
)

type constraint struct {
	kind   conKind
	vars   []int   // operand variable ids; meaning depends on kind (see apply sites)
	coeffs []int64 // only used by kEquality / kGreaterOrEqual
	target int64
}

type objectiveTerm struct {
	id    int
	coeff float64
}

// Adapter is the refsolver's driver.SolverAdapter implementation. Use New to
// construct one per solve; it is not safe for concurrent model-building
// (matching the core's single-threaded emission phase).
type Adapter struct {
	vars        []variable
	constraints []constraint
	objective   []objectiveTerm
}

// New returns an empty Adapter ready to have variables and constraints
// registered against it.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) newVar(kind varKind, lo, hi int64, name string) driver.Var {
	id := len(a.vars)
	a.vars = append(a.vars, variable{id: id, name: name, kind: kind, lo: lo, hi: hi})
	return id
}

// NewBoolVar implements driver.SolverAdapter.
func (a *Adapter) NewBoolVar(name string) driver.Var {
	return a.newVar(boolVar, 0, 1, name)
}

// NewIntVar implements driver.SolverAdapter.
func (a *Adapter) NewIntVar(lo, hi int64, name string) driver.Var {
	return a.newVar(intVar, lo, hi, name)
}

func toID(v driver.Var) int {
	return v.(int)
}

func toIDs(vs []driver.Var) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = toID(v)
	}
	return out
}

// AddEquality implements driver.SolverAdapter: sum(coeffs[i]*vars[i]) ==
// target.
func (a *Adapter) AddEquality(vars []driver.Var, coeffs []int64, target int64) {
	a.constraints = append(a.constraints, constraint{kind: kEquality, vars: toIDs(vars), coeffs: append([]int64(nil), coeffs...), target: target})
}

// AddGreaterOrEqual implements driver.SolverAdapter: sum(coeffs[i]*vars[i])
// >= target.
func (a *Adapter) AddGreaterOrEqual(vars []driver.Var, coeffs []int64, target int64) {
	a.constraints = append(a.constraints, constraint{kind: kGreaterOrEqual, vars: toIDs(vars), coeffs: append([]int64(nil), coeffs...), target: target})
}

// AddMaxEquality implements driver.SolverAdapter: target == max(vars...).
// vars[0] in the stored constraint is the target; the remainder are
// operands.
func (a *Adapter) AddMaxEquality(target driver.Var, vars []driver.Var) {
	ids := append([]int{toID(target)}, toIDs(vars)...)
	a.constraints = append(a.constraints, constraint{kind: kMaxEquality, vars: ids})
}

// AddMinEquality implements driver.SolverAdapter: target == min(vars...).
func (a *Adapter) AddMinEquality(target driver.Var, vars []driver.Var) {
	ids := append([]int{toID(target)}, toIDs(vars)...)
	a.constraints = append(a.constraints, constraint{kind: kMinEquality, vars: ids})
}

// AddImplication implements driver.SolverAdapter: antecedent -> consequent.
func (a *Adapter) AddImplication(antecedent, consequent driver.Var) {
	a.constraints = append(a.constraints, constraint{kind: kImplication, vars: []int{toID(antecedent), toID(consequent)}})
}

// AddBoolAnd implements driver.SolverAdapter: target == AND(vars...).
func (a *Adapter) AddBoolAnd(target driver.Var, vars []driver.Var) {
	ids := append([]int{toID(target)}, toIDs(vars)...)
	a.constraints = append(a.constraints, constraint{kind: kBoolAnd, vars: ids})
}

// AddBoolOr implements driver.SolverAdapter: target == OR(vars...).
func (a *Adapter) AddBoolOr(target driver.Var, vars []driver.Var) {
	ids := append([]int{toID(target)}, toIDs(vars)...)
	a.constraints = append(a.constraints, constraint{kind: kBoolOr, vars: ids})
}

// Minimize implements driver.SolverAdapter.
func (a *Adapter) Minimize(vars []driver.Var, coeffs []float64) {
	a.objective = a.objective[:0]
	for i, v := range vars {
		a.objective = append(a.objective, objectiveTerm{id: toID(v), coeff: coeffs[i]})
	}
}

// solution is the driver.Solution returned once Solve reaches a terminal
// status with at least one feasible assignment found.
type solution struct {
	values    map[int]int64
	objective float64
	bestBound float64
	wallTime  float64
}

func (s *solution) ValueOf(v driver.Var) int64   { return s.values[toID(v)] }
func (s *solution) ObjectiveValue() float64      { return s.objective }
func (s *solution) BestBound() float64           { return s.bestBound }
func (s *solution) WallTime() float64            { return s.wallTime }

// searchState carries the mutable state threaded through the recursive
// backtracking search.
type searchState struct {
	a         *Adapter
	deadline  time.Time
	ctx       context.Context
	throttle  *driver.ProgressThrottle
	onProg    func(driver.ProgressReport)
	started   time.Time
	bestVals  map[int]int64
	bestObj   float64
	haveBest  bool
	stopped   bool
	solutions int
}

// Solve implements driver.SolverAdapter. It runs an exhaustive
// branch-and-prune search over the adapter's variables (branching on any
// variable propagation through the model's equalities and reifications has
// not yet fixed, trying each value of its domain) and returns the best incumbent found before
// the time limit, cancellation, or exhaustion of the search space.
func (a *Adapter) Solve(params driver.SolveParams) (driver.TerminalStatus, driver.Solution) {
	st := &searchState{
		a:        a,
		started:  time.Now(),
		throttle: driver.NewProgressThrottle(params.ThrottleSeconds),
		onProg:   params.OnProgress,
		ctx:      params.Cancel,
	}
	if params.TimeLimitSeconds > 0 {
		st.deadline = st.started.Add(time.Duration(params.TimeLimitSeconds) * time.Second)
	}

	assigned := make(map[int]int64, len(a.vars))
	exhausted := st.search(assigned)

	wallTime := time.Since(st.started).Seconds()
	if !st.haveBest {
		if st.stopped {
			return driver.Unknown, nil
		}
		return driver.Infeasible, nil
	}

	bound := st.bestObj
	if !exhausted {
		bound = 0
	}
	sol := &solution{values: st.bestVals, objective: st.bestObj, bestBound: bound, wallTime: wallTime}
	if exhausted {
		return driver.Optimal, sol
	}
	return driver.Feasible, sol
}

// search runs propagation to a fixpoint, then branches on the
// most-constrained unassigned variable. It returns true if the search
// completed exhaustively (proving optimality of whatever incumbent was
// found), false if it was cut short by the time limit or cancellation.
func (st *searchState) search(assigned map[int]int64) bool {
	if st.stopped {
		return false
	}
	if !st.deadline.IsZero() && time.Now().After(st.deadline) {
		st.stopped = true
		return false
	}
	if driver.Cancelled(st.ctx) {
		st.stopped = true
		return false
	}

	work := cloneMap(assigned)
	ok := propagate(st.a, work)
	if !ok {
		return true // this branch is infeasible; fully explored
	}

	if len(work) == len(st.a.vars) {
		st.recordSolution(work)
		return true
	}

	v := pickBranchVar(st.a, work)
	for val := st.a.vars[v].lo; val <= st.a.vars[v].hi; val++ {
		work[v] = val
		complete := st.search(work)
		delete(work, v)
		if !complete {
			return false
		}
	}
	return true
}

func (st *searchState) recordSolution(values map[int]int64) {
	st.solutions++
	obj := evalObjective(st.a, values)
	if !st.haveBest || obj < st.bestObj {
		st.haveBest = true
		st.bestObj = obj
		st.bestVals = cloneMap(values)
	}
	if st.onProg != nil {
		now := time.Now()
		if st.throttle.ShouldReport(now) {
			st.onProg(driver.ProgressReport{
				Phase:          "solving",
				SolutionsFound: st.solutions,
				ObjectiveValue: st.bestObj,
				BestBound:      0,
				GapPercent:     driver.GapPercent(st.bestObj, 0),
				WallTime:       st.throttle.WallTime(now),
			})
		}
	}
}

func evalObjective(a *Adapter, values map[int]int64) float64 {
	var total float64
	for _, term := range a.objective {
		total += term.coeff * float64(values[term.id])
	}
	return total
}

func cloneMap(m map[int]int64) map[int]int64 {
	out := make(map[int]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// pickBranchVar selects the unassigned variable that participates in the
// constraint with the fewest currently-unbound variables (a most-constrained
// variable heuristic), falling back to the lowest-id unassigned variable.
func pickBranchVar(a *Adapter, assigned map[int]int64) int {
	best := -1
	bestScore := int(^uint(0) >> 1)
	for _, c := range a.constraints {
		unbound := 0
		var lastUnbound int
		for _, id := range c.vars {
			if _, ok := assigned[id]; !ok {
				unbound++
				lastUnbound = id
			}
		}
		if unbound == 0 {
			continue
		}
		if unbound < bestScore {
			bestScore = unbound
			best = lastUnbound
		}
	}
	if best >= 0 {
		return best
	}
	for _, v := range a.vars {
		if _, ok := assigned[v.id]; !ok {
			return v.id
		}
	}
	panic("refsolver: pickBranchVar called with no unassigned variables")
}
