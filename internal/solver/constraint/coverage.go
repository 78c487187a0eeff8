package constraint

import (
	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

// Coverage is the hard constraint requiring exact staffing: for every
// (period, shift type), the number of workers assigned equals
// shift_type.WorkersRequired -- never more, never fewer. Grounded on
// constraints/coverage.py's CoverageConstraint.
type Coverage struct {
	base
}

// NewCoverage builds the Coverage constraint with the given policy spec.
func NewCoverage(spec entity.ConstraintSpec) *Coverage {
	return &Coverage{base: newBase("coverage", spec)}
}

// Apply posts one equality per (period, shift type): the over-coverage case
// is deliberately made infeasible rather than silently relaxed, per the
// spec's rationale that over-assignment wastes scarce workers.
func (c *Coverage) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled {
		return nil
	}
	for _, p := range ctx.Periods {
		for _, st := range ctx.ShiftTypes {
			var vars []driver.Var
			for _, w := range ctx.Workers {
				v, err := reg.AssignmentVar(w.ID, p.Index, st.ID)
				if err != nil {
					return err
				}
				vars = append(vars, v)
			}
			coeffs := make([]int64, len(vars))
			for i := range coeffs {
				coeffs[i] = 1
			}
			model.AddEquality(vars, coeffs, int64(st.WorkersRequired))
		}
	}
	return nil
}
