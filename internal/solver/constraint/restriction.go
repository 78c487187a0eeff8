package constraint

import (
	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

// Restriction is the hard constraint forbidding a worker from ever being
// assigned a shift type named in their Worker.RestrictedShift set. Unknown
// shift ids in that set are silently ignored -- the domain model already
// accepted them at construction time, and treating them as an error here
// would be over-strict.
type Restriction struct {
	base
}

// NewRestriction builds the Restriction constraint with the given policy
// spec.
func NewRestriction(spec entity.ConstraintSpec) *Restriction {
	return &Restriction{base: newBase("restriction", spec)}
}

// Apply posts assignment[w,p,s] == 0 for every worker w, restricted shift
// type s, and period p.
func (c *Restriction) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled {
		return nil
	}
	known := make(map[string]struct{}, len(ctx.ShiftTypes))
	for _, st := range ctx.ShiftTypes {
		known[st.ID] = struct{}{}
	}

	for _, w := range ctx.Workers {
		for shiftTypeID := range w.RestrictedShift {
			if _, ok := known[shiftTypeID]; !ok {
				continue
			}
			for _, p := range ctx.Periods {
				v, err := reg.AssignmentVar(w.ID, p.Index, shiftTypeID)
				if err != nil {
					return err
				}
				model.AddEquality([]driver.Var{v}, []int64{1}, 0)
			}
		}
	}
	return nil
}
