package constraint

import (
	"fmt"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

const defaultMaxPeriodsBetween = 4

// Frequency is the soft constraint penalizing long gaps between a worker's
// occurrences of a target shift type: within every sliding window of
// max_periods_between+1 consecutive periods, at least one occurrence is
// expected, and the window's viol indicator fires when none occurred.
type Frequency struct {
	base
}

// NewFrequency builds the Frequency constraint with the given policy spec.
func NewFrequency(spec entity.ConstraintSpec) *Frequency {
	return &Frequency{base: newBase("frequency", spec)}
}

// Apply introduces, for every worker x target shift type x sliding window,
// a has/viol reified pair per the sliding-window formula.
func (c *Frequency) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled {
		return nil
	}
	maxBetween, err := c.spec.IntParam("max_periods_between", defaultMaxPeriodsBetween)
	if err != nil {
		return err
	}
	targets, err := selectShiftTypes(c.spec, "shift_types", ctx.ShiftTypes)
	if err != nil {
		return err
	}

	window := maxBetween + 1
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
				has := model.NewBoolVar(fmt.Sprintf("freq_has[%s,%s,%d]", w.ID, st.ID, p0))
				model.AddBoolOr(has, windowVars)

				viol := model.NewBoolVar(fmt.Sprintf("freq_viol[%s,%s,%d]", w.ID, st.ID, p0))
				model.AddEquality([]driver.Var{has, viol}, []int64{1, 1}, 1)

				name := fmt.Sprintf("viol[%s,%s,%d]", w.ID, st.ID, p0)
				c.addViolation(name, viol, Violation)
				c.setPriority(name, priority)
			}
		}
	}
	return nil
}

// selectShiftTypes reads a constraint's optional shift_types parameter,
// defaulting to every shift type in ctx when the parameter is absent.
func selectShiftTypes(spec entity.ConstraintSpec, paramName string, all []entity.ShiftType) ([]entity.ShiftType, error) {
	ids, err := spec.StringSliceParam(paramName)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return all, nil
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	var out []entity.ShiftType
	for _, st := range all {
		if _, ok := idSet[st.ID]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}
