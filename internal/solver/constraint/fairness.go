package constraint

import (
	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

// Fairness is the soft constraint minimizing inequality of undesirable-shift
// load across workers. With the `categories` parameter set, a per-worker
// total is summed ad hoc over shift types in those categories; otherwise the
// registry's precomputed undesirable_totals aggregate is used.
type Fairness struct {
	base
}

// NewFairness builds the Fairness constraint with the given policy spec.
func NewFairness(spec entity.ConstraintSpec) *Fairness {
	return &Fairness{base: newBase("fairness", spec)}
}

// Apply is a no-op with fewer than two workers or when no shift type
// matches the selection criteria (categories, or is_undesirable in default
// mode). Otherwise it introduces max_u, min_u (Auxiliary) and spread
// (ObjectiveTarget).
func (c *Fairness) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled || len(ctx.Workers) < 2 {
		return nil
	}

	categories, err := c.spec.StringSliceParam("categories")
	if err != nil {
		return err
	}

	var matching []entity.ShiftType
	if len(categories) > 0 {
		catSet := make(map[string]struct{}, len(categories))
		for _, cat := range categories {
			catSet[cat] = struct{}{}
		}
		for _, st := range ctx.ShiftTypes {
			if _, ok := catSet[st.Category]; ok {
				matching = append(matching, st)
			}
		}
	} else {
		for _, st := range ctx.ShiftTypes {
			if st.IsUndesirable {
				matching = append(matching, st)
			}
		}
	}
	if len(matching) == 0 {
		return nil
	}

	totals := make([]driver.Var, len(ctx.Workers))
	for i, w := range ctx.Workers {
		if len(categories) == 0 {
			v, err := reg.UndesirableTotalVar(w.ID)
			if err != nil {
				return err
			}
			totals[i] = v
			continue
		}

		var vars []driver.Var
		for _, p := range ctx.Periods {
			for _, st := range matching {
				v, err := reg.AssignmentVar(w.ID, p.Index, st.ID)
				if err != nil {
					return err
				}
				vars = append(vars, v)
			}
		}
		hi := int64(len(ctx.Periods) * len(matching))
		total := model.NewIntVar(0, hi, "fairness_total["+w.ID+"]")
		coeffs := make([]int64, len(vars)+1)
		terms := append(append([]driver.Var(nil), vars...), total)
		for i := range vars {
			coeffs[i] = 1
		}
		coeffs[len(vars)] = -1
		model.AddEquality(terms, coeffs, 0)
		totals[i] = total
	}

	maxU := model.NewIntVar(0, int64(len(ctx.Periods)), "fairness_max")
	minU := model.NewIntVar(0, int64(len(ctx.Periods)), "fairness_min")
	model.AddMaxEquality(maxU, totals)
	model.AddMinEquality(minU, totals)

	spread := model.NewIntVar(0, int64(len(ctx.Periods)), "fairness_spread")
	model.AddEquality([]driver.Var{maxU, minU, spread}, []int64{1, -1, -1}, 0)

	c.addViolation("max_u", maxU, Auxiliary)
	c.addViolation("min_u", minU, Auxiliary)
	c.addViolation("spread", spread, ObjectiveTarget)
	return nil
}
