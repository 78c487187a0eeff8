// Package registry implements the Variable Registry: a flat, pre-indexed
// table of every decision variable the solve needs, built once per solve and
// read-only thereafter. It is grounded on the original SolverVariables
// dataclass (solver/types.py in the Python source this was distilled from),
// reshaped into a packed-index table per the design note on heavy nested
// maps: variables live in flat slices addressed by integer indices assigned
// at construction; a lookup by id costs one map lookup per worker or
// shift-type id before indexing the slice.
package registry

import (
	"fmt"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solvererr"
)

// Var is an opaque handle to a decision variable allocated on a
// driver.SolverAdapter. The registry never inspects it; it is only ever
// passed back to the adapter that created it. It is a type alias (not a
// defined type) for `any` so that it is identical to driver.Var -- any
// concrete SolverAdapter's variable-allocation methods therefore satisfy
// Builder below with no adapter-side wrapping, while registry still never
// imports driver.
type Var = any

// Registry owns every decision variable for one solve: the assignment
// population over the full worker x period x shift-type Cartesian product,
// plus the two derived aggregate populations (shift_counts and
// undesirable_totals).
type Registry struct {
	workers    []entity.Worker
	shiftTypes []entity.ShiftType
	numPeriods int

	workerIndex    map[string]int
	shiftTypeIndex map[string]int

	assignment       []Var // packed [w][p][s] -> flat index
	shiftCounts      []Var // packed [w][s]
	undesirableTotal []Var // packed [w]
}

// Dims reports the three cardinalities the registry was built over.
func (r *Registry) Dims() (workers, periods, shiftTypes int) {
	return len(r.workers), r.numPeriods, len(r.shiftTypes)
}

func (r *Registry) assignIdx(w, p, s int) int {
	return (w*r.numPeriods+p)*len(r.shiftTypes) + s
}

func (r *Registry) shiftCountIdx(w, s int) int {
	return w*len(r.shiftTypes) + s
}

// AssignmentVar returns the 0/1 variable for (workerID, periodIndex,
// shiftTypeID), or a *solvererr.MissingVariable if any component is unknown
// or out of range.
func (r *Registry) AssignmentVar(workerID string, periodIndex int, shiftTypeID string) (Var, error) {
	w, ok := r.workerIndex[workerID]
	if !ok {
		return nil, solvererr.NewMissingVariable("assignment", key3(workerID, periodIndex, shiftTypeID))
	}
	if periodIndex < 0 || periodIndex >= r.numPeriods {
		return nil, solvererr.NewMissingVariable("assignment", key3(workerID, periodIndex, shiftTypeID))
	}
	s, ok := r.shiftTypeIndex[shiftTypeID]
	if !ok {
		return nil, solvererr.NewMissingVariable("assignment", key3(workerID, periodIndex, shiftTypeID))
	}
	return r.assignment[r.assignIdx(w, periodIndex, s)], nil
}

// ShiftCountVar returns the aggregate shift_counts[worker, shift_type]
// variable.
func (r *Registry) ShiftCountVar(workerID, shiftTypeID string) (Var, error) {
	w, ok := r.workerIndex[workerID]
	if !ok {
		return nil, solvererr.NewMissingVariable("shift_count", key2(workerID, shiftTypeID))
	}
	s, ok := r.shiftTypeIndex[shiftTypeID]
	if !ok {
		return nil, solvererr.NewMissingVariable("shift_count", key2(workerID, shiftTypeID))
	}
	return r.shiftCounts[r.shiftCountIdx(w, s)], nil
}

// UndesirableTotalVar returns the aggregate undesirable_totals[worker]
// variable.
func (r *Registry) UndesirableTotalVar(workerID string) (Var, error) {
	w, ok := r.workerIndex[workerID]
	if !ok {
		return nil, solvererr.NewMissingVariable("undesirable_total", workerID)
	}
	return r.undesirableTotal[w], nil
}

// AssignmentEntry is one (worker, period, shift type, var) tuple yielded by
// AllAssignmentVars, in deterministic insertion order.
type AssignmentEntry struct {
	WorkerID    string
	PeriodIndex int
	ShiftTypeID string
	Var         Var
}

// AllAssignmentVars returns every assignment variable in deterministic
// worker-major, period-next, shift-type-minor order -- the order the
// registry was built in, matching the order workers/shiftTypes were passed
// to New.
func (r *Registry) AllAssignmentVars() []AssignmentEntry {
	out := make([]AssignmentEntry, 0, len(r.assignment))
	for wi, w := range r.workers {
		for p := 0; p < r.numPeriods; p++ {
			for si, s := range r.shiftTypes {
				out = append(out, AssignmentEntry{
					WorkerID:    w.ID,
					PeriodIndex: p,
					ShiftTypeID: s.ID,
					Var:         r.assignment[r.assignIdx(wi, p, si)],
				})
			}
		}
	}
	return out
}

// Workers returns the ordered worker list the registry was built from.
func (r *Registry) Workers() []entity.Worker { return r.workers }

// ShiftTypes returns the ordered shift type list the registry was built
// from.
func (r *Registry) ShiftTypes() []entity.ShiftType { return r.shiftTypes }

// NumPeriods returns the period count the registry was built over.
func (r *Registry) NumPeriods() int { return r.numPeriods }

// Builder is implemented by a driver.SolverAdapter's variable-allocation
// methods. It is the minimal surface New needs, kept separate from the full
// SolverAdapter interface so the registry package never imports driver.
type Builder interface {
	NewBoolVar(name string) Var
	NewIntVar(lo, hi int64, name string) Var
	AddEquality(vars []Var, coeffs []int64, target int64)
}

// New builds a Registry over the full Cartesian product of workers, periods,
// and shiftTypes, allocating every variable through builder in deterministic
// order: workers outer, periods middle, shift types inner. This ordering is
// the one guarantee needed for reproducible builds -- identical
// inputs always produce a structurally identical model.
func New(builder Builder, workers []entity.Worker, numPeriods int, shiftTypes []entity.ShiftType) *Registry {
	r := &Registry{
		workers:        workers,
		shiftTypes:     shiftTypes,
		numPeriods:     numPeriods,
		workerIndex:    make(map[string]int, len(workers)),
		shiftTypeIndex: make(map[string]int, len(shiftTypes)),
	}
	for i, w := range workers {
		r.workerIndex[w.ID] = i
	}
	for i, s := range shiftTypes {
		r.shiftTypeIndex[s.ID] = i
	}

	r.assignment = make([]Var, len(workers)*numPeriods*len(shiftTypes))
	for wi, w := range workers {
		for p := 0; p < numPeriods; p++ {
			for si, s := range shiftTypes {
				name := fmt.Sprintf("assign[%s,%d,%s]", w.ID, p, s.ID)
				r.assignment[r.assignIdx(wi, p, si)] = builder.NewBoolVar(name)
			}
		}
	}

	r.shiftCounts = make([]Var, len(workers)*len(shiftTypes))
	for wi, w := range workers {
		for si, s := range shiftTypes {
			name := fmt.Sprintf("shift_count[%s,%s]", w.ID, s.ID)
			v := builder.NewIntVar(0, int64(numPeriods), name)
			r.shiftCounts[r.shiftCountIdx(wi, si)] = v

			terms := make([]Var, 0, numPeriods)
			for p := 0; p < numPeriods; p++ {
				terms = append(terms, r.assignment[r.assignIdx(wi, p, si)])
			}
			coeffs := make([]int64, len(terms)+1)
			vars := make([]Var, len(terms)+1)
			for i, t := range terms {
				vars[i] = t
				coeffs[i] = 1
			}
			vars[len(terms)] = v
			coeffs[len(terms)] = -1
			builder.AddEquality(vars, coeffs, 0)
		}
	}

	r.undesirableTotal = make([]Var, len(workers))
	for wi, w := range workers {
		name := fmt.Sprintf("undesirable_total[%s]", w.ID)
		maxTotal := int64(numPeriods * len(shiftTypes))
		v := builder.NewIntVar(0, maxTotal, name)
		r.undesirableTotal[wi] = v

		var vars []Var
		var coeffs []int64
		for si, s := range shiftTypes {
			if !s.IsUndesirable {
				continue
			}
			vars = append(vars, r.shiftCounts[r.shiftCountIdx(wi, si)])
			coeffs = append(coeffs, 1)
		}
		vars = append(vars, v)
		coeffs = append(coeffs, -1)
		builder.AddEquality(vars, coeffs, 0)
	}

	return r
}

func key3(workerID string, periodIndex int, shiftTypeID string) string {
	return fmt.Sprintf("(%s, %d, %s)", workerID, periodIndex, shiftTypeID)
}

func key2(workerID, shiftTypeID string) string {
	return fmt.Sprintf("(%s, %s)", workerID, shiftTypeID)
}
