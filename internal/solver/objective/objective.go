// Package objective implements the Objective Compiler: it walks the applied
// constraint set, collects violation variables, applies per-constraint
// weights and per-variable priorities, and emits a single weighted-sum
// minimization objective. It is grounded directly on the original
// ObjectiveBuilder and ObjectiveTerm dataclasses (solver/objective_builder.py).
package objective

import (
	"regexp"
	"strconv"

	"github.com/schedcu/solver/internal/solver/constraint"
	"github.com/schedcu/solver/internal/solver/driver"
)

// Term is one entry in the compiled objective: effective coefficient ==
// constraint weight * priority, except for ObjectiveTarget terms where the
// multiplier is always 1.
type Term struct {
	ConstraintID string
	VariableName string
	Var          driver.Var
	BaseWeight   float64
	Priority     int
}

// EffectiveCoefficient returns weight * priority, the coefficient this term
// contributes to the objective.
func (t Term) EffectiveCoefficient() float64 {
	return t.BaseWeight * float64(t.Priority)
}

var legacyPrioritySuffix = regexp.MustCompile(`_prio(\d+)$`)

// Build walks constraints in order and returns the ordered list of
// objective terms they contribute. Hard constraints are skipped entirely;
// Auxiliary violation variables are skipped; ObjectiveTarget variables get
// priority 1 (multiplier 1); Violation variables look up their
// priority in the constraint's Priorities() map, falling back to a legacy
// `_prioN` name suffix, defaulting to 1.
func Build(constraints []constraint.Constraint) []Term {
	var terms []Term
	for _, c := range constraints {
		spec := c.Spec()
		if spec.IsHard {
			continue
		}
		priorities := c.Priorities()
		for name, vv := range c.Violations() {
			switch vv.Kind {
			case constraint.Auxiliary:
				continue
			case constraint.ObjectiveTarget:
				terms = append(terms, Term{
					ConstraintID: c.ID(),
					VariableName: name,
					Var:          vv.Var,
					BaseWeight:   spec.Weight,
					Priority:     1,
				})
			case constraint.Violation:
				terms = append(terms, Term{
					ConstraintID: c.ID(),
					VariableName: name,
					Var:          vv.Var,
					BaseWeight:   spec.Weight,
					Priority:     priorityFor(name, priorities),
				})
			}
		}
	}
	return terms
}

// priorityFor looks up an explicit priority, falling back to parsing a
// legacy `_prioN` suffix from the variable name, defaulting to 1. The
// suffix parser is a compatibility shim that should remain until every
// constraint populates Priorities() explicitly.
func priorityFor(name string, priorities map[string]int) int {
	if p, ok := priorities[name]; ok {
		return p
	}
	if m := legacyPrioritySuffix.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 1
}

// Install builds the objective terms and, if any were collected, installs a
// minimize() call on model. It returns the terms for introspection via
// Breakdown / TotalWeightByConstraint. No objective is installed when
// constraints produced no terms -- the solver then treats the problem as
// pure feasibility.
func Install(model driver.SolverAdapter, constraints []constraint.Constraint) []Term {
	terms := Build(constraints)
	if len(terms) == 0 {
		return terms
	}
	vars := make([]driver.Var, len(terms))
	coeffs := make([]float64, len(terms))
	for i, t := range terms {
		vars[i] = t.Var
		coeffs[i] = t.EffectiveCoefficient()
	}
	model.Minimize(vars, coeffs)
	return terms
}

// Breakdown groups terms by constraint id, for debugging and reporting.
func Breakdown(terms []Term) map[string][]Term {
	out := make(map[string][]Term)
	for _, t := range terms {
		out[t.ConstraintID] = append(out[t.ConstraintID], t)
	}
	return out
}

// TotalWeightByConstraint sums each constraint's contributed coefficients.
func TotalWeightByConstraint(terms []Term) map[string]float64 {
	out := make(map[string]float64)
	for _, t := range terms {
		out[t.ConstraintID] += t.EffectiveCoefficient()
	}
	return out
}
