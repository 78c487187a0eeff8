package constraint

import (
	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

// Availability is the hard constraint enforcing Unavailable records: for
// every such record and every period it overlaps, the affected worker takes
// zero occurrences of the scoped shift type (or every shift type, if the
// record is unscoped). Records of other kinds (Available, Preferred) belong
// to soft preference handling and are ignored here.
type Availability struct {
	base
}

// NewAvailability builds the Availability constraint with the given policy
// spec.
func NewAvailability(spec entity.ConstraintSpec) *Availability {
	return &Availability{base: newBase("availability", spec)}
}

// Apply posts one zero-equality per overlapping (period, affected shift
// type) pair for every Unavailable record.
func (c *Availability) Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error {
	if !c.spec.Enabled {
		return nil
	}
	for _, rec := range ctx.Availabilities {
		if rec.Kind != entity.Unavailable {
			continue
		}
		for _, p := range ctx.Periods {
			if !rec.OverlapsPeriod(p) {
				continue
			}
			shiftTypeIDs := []string{rec.ShiftTypeID}
			if !rec.Scoped() {
				shiftTypeIDs = shiftTypeIDs[:0]
				for _, st := range ctx.ShiftTypes {
					shiftTypeIDs = append(shiftTypeIDs, st.ID)
				}
			}
			for _, shiftTypeID := range shiftTypeIDs {
				v, err := reg.AssignmentVar(rec.WorkerID, p.Index, shiftTypeID)
				if err != nil {
					return err
				}
				model.AddEquality([]driver.Var{v}, []int64{1}, 0)
			}
		}
	}
	return nil
}
