package objective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver/constraint"
	"github.com/schedcu/solver/internal/solver/cpsat/refsolver"
	"github.com/schedcu/solver/internal/solver/driver"
	"github.com/schedcu/solver/internal/solver/objective"
	"github.com/schedcu/solver/internal/solver/registry"
)

// fakeConstraint stands in for a real constraint.Constraint so these tests
// can exercise objective.Build/Install against hand-built violation sets
// without needing a populated registry or Context.
type fakeConstraint struct {
	id         string
	spec       entity.ConstraintSpec
	violations map[string]constraint.ViolationVar
	priorities map[string]int
}

func newFakeConstraint(id string, spec entity.ConstraintSpec, violations map[string]constraint.ViolationVar, priorities map[string]int) *fakeConstraint {
	if priorities == nil {
		priorities = map[string]int{}
	}
	return &fakeConstraint{id: id, spec: spec, violations: violations, priorities: priorities}
}

func (f *fakeConstraint) ID() string { return f.id }
func (f *fakeConstraint) Apply(driver.SolverAdapter, *registry.Registry, constraint.Context) error {
	return nil
}
func (f *fakeConstraint) Violations() map[string]constraint.ViolationVar { return f.violations }
func (f *fakeConstraint) Priorities() map[string]int                    { return f.priorities }
func (f *fakeConstraint) Spec() entity.ConstraintSpec                   { return f.spec }

func TestBuild_SkipsHardConstraints(t *testing.T) {
	a := refsolver.New()
	v := a.NewBoolVar("v")

	hard, err := entity.NewConstraintSpec(true, true, 100, nil)
	require.NoError(t, err)

	c := newFakeConstraint("coverage", hard, map[string]constraint.ViolationVar{
		"viol": {Var: v, Kind: constraint.Violation},
	}, nil)

	terms := objective.Build([]constraint.Constraint{c})
	assert.Empty(t, terms)
}

func TestBuild_SkipsAuxiliaryAndWeighsViolationByPriority(t *testing.T) {
	a := refsolver.New()
	maxU := a.NewIntVar(0, 10, "max_u")
	viol := a.NewBoolVar("viol")

	soft, err := entity.NewConstraintSpec(true, false, 10, nil)
	require.NoError(t, err)

	c := newFakeConstraint("frequency", soft, map[string]constraint.ViolationVar{
		"max_u":          {Var: maxU, Kind: constraint.Auxiliary},
		"viol[W1,s,0]":   {Var: viol, Kind: constraint.Violation},
	}, map[string]int{"viol[W1,s,0]": 3})

	terms := objective.Build([]constraint.Constraint{c})
	require.Len(t, terms, 1)
	assert.Equal(t, "viol[W1,s,0]", terms[0].VariableName)
	assert.Equal(t, 30.0, terms[0].EffectiveCoefficient())
}

func TestBuild_ObjectiveTargetAlwaysMultiplierOne(t *testing.T) {
	a := refsolver.New()
	spread := a.NewIntVar(0, 10, "spread")

	soft, err := entity.NewConstraintSpec(true, false, 1000, nil)
	require.NoError(t, err)

	c := newFakeConstraint("fairness", soft, map[string]constraint.ViolationVar{
		"spread": {Var: spread, Kind: constraint.ObjectiveTarget},
	}, nil)

	terms := objective.Build([]constraint.Constraint{c})
	require.Len(t, terms, 1)
	assert.Equal(t, 1000.0, terms[0].EffectiveCoefficient())
}

func TestBuild_LegacyPrioritySuffixFallback(t *testing.T) {
	a := refsolver.New()
	viol := a.NewBoolVar("viol")

	soft, err := entity.NewConstraintSpec(true, false, 5, nil)
	require.NoError(t, err)

	c := newFakeConstraint("sequence", soft, map[string]constraint.ViolationVar{
		"viol_prio2": {Var: viol, Kind: constraint.Violation},
	}, nil)

	terms := objective.Build([]constraint.Constraint{c})
	require.Len(t, terms, 1)
	assert.Equal(t, 10.0, terms[0].EffectiveCoefficient())
}

func TestBuild_NoTermsWhenAllSoftDisabled(t *testing.T) {
	disabled, err := entity.NewConstraintSpec(false, false, 10, nil)
	require.NoError(t, err)

	c := newFakeConstraint("frequency", disabled, map[string]constraint.ViolationVar{}, nil)
	terms := objective.Build([]constraint.Constraint{c})
	assert.Empty(t, terms)
}

func TestInstall_NoObjectiveWhenNoTerms(t *testing.T) {
	a := refsolver.New()
	hard, err := entity.NewConstraintSpec(true, true, 100, nil)
	require.NoError(t, err)
	c := newFakeConstraint("coverage", hard, map[string]constraint.ViolationVar{}, nil)

	terms := objective.Install(a, []constraint.Constraint{c})
	assert.Empty(t, terms)
}

func TestTotalWeightByConstraint_Sums(t *testing.T) {
	a := refsolver.New()
	v1 := a.NewBoolVar("v1")
	v2 := a.NewBoolVar("v2")

	soft, err := entity.NewConstraintSpec(true, false, 2, nil)
	require.NoError(t, err)

	c := newFakeConstraint("frequency", soft, map[string]constraint.ViolationVar{
		"a": {Var: v1, Kind: constraint.Violation},
		"b": {Var: v2, Kind: constraint.Violation},
	}, map[string]int{"a": 1, "b": 2})

	terms := objective.Build([]constraint.Constraint{c})
	totals := objective.TotalWeightByConstraint(terms)
	assert.Equal(t, 6.0, totals["frequency"])
}
