package constraint

import (
	"fmt"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

const defaultMaxPeriodsAbsent = 8

// MaxAbsence is the soft constraint bounding the longest run of periods a
// worker can go without a target shift type -- structurally identical to
// Frequency but with a wider default window.
type MaxAbsence struct {
	base
}

// NewMaxAbsence builds the MaxAbsence constraint with the given policy
// spec.
func NewMaxAbsence(spec entity.ConstraintSpec) *MaxAbsence {
	return &MaxAbsence{base: newBase("max_absence", spec)}
}

// Apply introduces, for every worker x target shift type x sliding window
// of max_periods_absent+1 periods, a has/viol reified pair.
func (c *MaxAbsence) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled {
		return nil
	}
	maxAbsent, err := c.spec.IntParam("max_periods_absent", defaultMaxPeriodsAbsent)
	if err != nil {
		return err
	}
	targets, err := selectShiftTypes(c.spec, "shift_types", ctx.ShiftTypes)
	if err != nil {
		return err
	}

	window := maxAbsent + 1
	n := len(ctx.Periods)
	priority := 1

	for _, w := range ctx.Workers {
		for _, st := range targets {
			for p0 := 0; p0+window <= n; p0++ {
				var windowVars []driver.Var
				for p := p0; p < p0+window; p++ {
					v, err := reg.AssignmentVar(w.ID, p, st.ID)
					if err != nil {
						return err
					}
					windowVars = append(windowVars, v)
				}
				has := model.NewBoolVar(fmt.Sprintf("absence_has[%s,%s,%d]", w.ID, st.ID, p0))
				model.AddBoolOr(has, windowVars)

				viol := model.NewBoolVar(fmt.Sprintf("absence_viol[%s,%s,%d]", w.ID, st.ID, p0))
				model.AddEquality([]driver.Var{has, viol}, []int64{1, 1}, 1)

				name := fmt.Sprintf("viol[%s,%s,%d]", w.ID, st.ID, p0)
				c.addViolation(name, viol, Violation)
				c.setPriority(name, priority)
			}
		}
	}
	return nil
}
