package constraint

import (
	"fmt"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

// Sequence is the soft constraint penalizing back-to-back occurrences of
// the same category in adjacent periods: curr/next indicators reify "worker
// has any shift of this category in period p / p+1", and viol fires when
// both do.
type Sequence struct {
	base
}

// NewSequence builds the Sequence constraint with the given policy spec.
func NewSequence(spec entity.ConstraintSpec) *Sequence {
	return &Sequence{base: newBase("sequence", spec)}
}

// Apply is a no-op with fewer than two periods or no eligible categories.
func (c *Sequence) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled || len(ctx.Periods) < 2 {
		return nil
	}

	categories, err := selectCategories(c.spec, ctx.ShiftTypes)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}

	byCategory := make(map[string][]entity.ShiftType)
	for _, st := range ctx.ShiftTypes {
		byCategory[st.Category] = append(byCategory[st.Category], st)
	}

	priority := 1
	for _, w := range ctx.Workers {
		for _, category := range categories {
			shiftTypes := byCategory[category]
			if len(shiftTypes) == 0 {
				continue
			}
			for p := 0; p+1 < len(ctx.Periods); p++ {
				curr, err := categoryIndicator(model, reg, w.ID, p, shiftTypes, fmt.Sprintf("seq_curr[%s,%s,%d]", w.ID, category, p))
				if err != nil {
					return err
				}
				next, err := categoryIndicator(model, reg, w.ID, p+1, shiftTypes, fmt.Sprintf("seq_next[%s,%s,%d]", w.ID, category, p))
				if err != nil {
					return err
				}
				viol := model.NewBoolVar(fmt.Sprintf("seq_viol[%s,%s,%d]", w.ID, category, p))
				model.AddBoolAnd(viol, []driver.Var{curr, next})

				name := fmt.Sprintf("viol[%s,%s,%d]", w.ID, category, p)
				c.addViolation(name, viol, Violation)
				c.setPriority(name, priority)
			}
		}
	}
	return nil
}

func categoryIndicator(model driver.SolverAdapter, reg *registry.Registry, workerID string, periodIndex int, shiftTypes []entity.ShiftType, name string) (driver.Var, error) {
	var vars []driver.Var
	for _, st := range shiftTypes {
		v, err := reg.AssignmentVar(workerID, periodIndex, st.ID)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	indicator := model.NewBoolVar(name)
	model.AddBoolOr(indicator, vars)
	return indicator, nil
}

func selectCategories(spec entity.ConstraintSpec, all []entity.ShiftType) ([]string, error) {
	explicit, err := spec.StringSliceParam("categories")
	if err != nil {
		return nil, err
	}
	if len(explicit) > 0 {
		return explicit, nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, st := range all {
		if st.Category == "" {
			continue
		}
		if _, ok := seen[st.Category]; ok {
			continue
		}
		seen[st.Category] = struct{}{}
		out = append(out, st.Category)
	}
	return out, nil
}
