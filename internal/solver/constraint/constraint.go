// Package constraint implements the pluggable Constraint Set: one generator
// per rule in the scheduling model, each exposing the id/apply/violations/
// priorities/policy surface the Objective Compiler and Solver Driver consume.
// It is grounded on the original BaseConstraint ABC (constraints/base.py) and
// its seven concrete subclasses in the Python source this was distilled
// from, reshaped into a Go enumerated-variant-plus-capability-interface per
// the design note on dynamic dispatch: one struct per constraint kind,
// registered in a deterministic, caller-supplied order.
package constraint

import (
	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/registry"
)

// ViolationKind classifies a constraint's exposed violation variables for
// the Objective Compiler.
type ViolationKind int

const (
	// Violation is a 0/1 indicator included in the objective with a
	// priority-derived coefficient.
	Violation ViolationKind = iota
	// ObjectiveTarget is a non-binary magnitude (e.g. fairness spread)
	// included directly in the objective with multiplier 1.
	ObjectiveTarget
	// Auxiliary is a helper variable deliberately excluded from the
	// objective.
	Auxiliary
)

// ViolationVar pairs one exposed violation/target/auxiliary variable with
// its classification.
type ViolationVar struct {
	Var  driver.Var
	Kind ViolationKind
}

// Context is the read-only input every constraint's Apply receives: the
// full input population for one solve. WorkerRequests is threaded through
// even though none of the seven built-in constraints consume it -- it exists
// for constraints added later that need to read standing worker requests.
type Context struct {
	Workers         []entity.Worker
	ShiftTypes      []entity.ShiftType
	Periods         []entity.Period
	Availabilities  []entity.Availability
	WorkerRequests  []entity.WorkerRequest
}

// Constraint is the capability interface every constraint variant
// implements. ID must match a key in config.ConstraintSpecs.
type Constraint interface {
	ID() string
	Apply(model driver.SolverAdapter, reg *registry.Registry, ctx Context) error
	Violations() map[string]ViolationVar
	Priorities() map[string]int
	Spec() entity.ConstraintSpec
}

// base is embedded by every concrete constraint to hold the common
// enabled/is_hard/weight policy view and the violations/priorities maps
// Apply populates.
type base struct {
	id         string
	spec       entity.ConstraintSpec
	violations map[string]ViolationVar
	priorities map[string]int
}

func newBase(id string, spec entity.ConstraintSpec) base {
	return base{id: id, spec: spec, violations: map[string]ViolationVar{}, priorities: map[string]int{}}
}

func (b *base) ID() string                            { return b.id }
func (b *base) Violations() map[string]ViolationVar    { return b.violations }
func (b *base) Priorities() map[string]int             { return b.priorities }
func (b *base) Spec() entity.ConstraintSpec             { return b.spec }

func (b *base) addViolation(name string, v driver.Var, kind ViolationKind) {
	b.violations[name] = ViolationVar{Var: v, Kind: kind}
}

func (b *base) setPriority(name string, priority int) {
	b.priorities[name] = priority
}
