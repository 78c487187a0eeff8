// Package feasibility implements the out-of-core feasibility checker: a
// pre-solve (or post-infeasibility) analysis that classifies likely causes
// of infeasibility into structured issue records, independent of the
// constraint-programming model itself. It is grounded on the strategy
// pattern in the original validation/schedule_validator/strategies package
// (base.BaseValidationStrategy + coverage/availability/restriction
// strategies), adapted from a post-hoc schedule validator into a pre-solve
// input checker: instead of inspecting assignments that were made, each
// strategy here inspects whether the inputs leave any assignment possible
// at all.
package feasibility

import (
	"fmt"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solvererr"
)

// Strategy mirrors the original BaseValidationStrategy: each encapsulates
// one category of infeasibility check and appends IssueRecords it finds.
type Strategy interface {
	Check(ctx Inputs, issues *[]solvererr.IssueRecord)
}

// Inputs bundles everything a strategy needs to reason about feasibility,
// mirroring solve()'s input struct (spec §6).
type Inputs struct {
	Workers        []entity.Worker
	ShiftTypes     []entity.ShiftType
	Periods        []entity.Period
	Availabilities []entity.Availability
}

// DefaultStrategies returns the checker's standard strategy set, applied in
// this fixed order: coverage, restriction, then availability.
func DefaultStrategies() []Strategy {
	return []Strategy{
		coverageStrategy{},
		restrictionStrategy{},
		availabilityStrategy{},
	}
}

// Check runs every strategy against inputs and returns the accumulated
// issue list. An empty result does not guarantee feasibility -- it means
// no *known* infeasibility pattern was detected; the CP model may still
// fail for reasons outside this checker's vocabulary.
func Check(inputs Inputs, strategies []Strategy) []solvererr.IssueRecord {
	var issues []solvererr.IssueRecord
	for _, s := range strategies {
		s.Check(inputs, &issues)
	}
	return issues
}

// coverageStrategy flags shift types whose workers_required exceeds the
// number of workers who are even eligible (not restricted) to work them,
// for each applicable period -- a hard upper bound no solution can cross.
type coverageStrategy struct{}

func (coverageStrategy) Check(in Inputs, issues *[]solvererr.IssueRecord) {
	for _, p := range in.Periods {
		for _, st := range in.ShiftTypes {
			if !st.IsApplicableOn(weekdayOf(p)) {
				continue
			}
			eligible := 0
			for _, w := range in.Workers {
				if !w.IsRestrictedFrom(st.ID) {
					eligible++
				}
			}
			if eligible < st.WorkersRequired {
				*issues = append(*issues, solvererr.IssueRecord{
					Code: "coverage",
					Message: fmt.Sprintf(
						"period %d: shift %q requires %d workers but only %d are eligible",
						p.Index, st.ID, st.WorkersRequired, eligible,
					),
					Period: p.Index,
				})
			}
		}
	}
}

// restrictionStrategy flags shift types that every worker is restricted
// from -- structurally unassignable regardless of coverage counts.
type restrictionStrategy struct{}

func (restrictionStrategy) Check(in Inputs, issues *[]solvererr.IssueRecord) {
	if len(in.Workers) == 0 {
		return
	}
	for _, st := range in.ShiftTypes {
		allRestricted := true
		for _, w := range in.Workers {
			if !w.IsRestrictedFrom(st.ID) {
				allRestricted = false
				break
			}
		}
		if allRestricted {
			*issues = append(*issues, solvererr.IssueRecord{
				Code:    "restriction",
				Message: fmt.Sprintf("shift %q is restricted for every worker", st.ID),
				Period:  -1,
			})
		}
	}
}

// availabilityStrategy flags periods where every worker is marked
// Unavailable for a shift type that still requires coverage -- the
// combination availability + coverage can't jointly satisfy.
type availabilityStrategy struct{}

func (availabilityStrategy) Check(in Inputs, issues *[]solvererr.IssueRecord) {
	if len(in.Workers) == 0 {
		return
	}
	unavailable := make(map[int]map[[2]string]struct{}) // period index -> [workerID, shiftTypeID-or-""]
	for _, a := range in.Availabilities {
		if a.Kind != entity.Unavailable {
			continue
		}
		for _, p := range in.Periods {
			if !a.OverlapsPeriod(p) {
				continue
			}
			if unavailable[p.Index] == nil {
				unavailable[p.Index] = make(map[[2]string]struct{})
			}
			unavailable[p.Index][[2]string{a.WorkerID, a.ShiftTypeID}] = struct{}{}
		}
	}
	for _, p := range in.Periods {
		for _, st := range in.ShiftTypes {
			if !st.IsApplicableOn(weekdayOf(p)) || st.WorkersRequired == 0 {
				continue
			}
			available := 0
			for _, w := range in.Workers {
				_, blockedAll := unavailable[p.Index][[2]string{w.ID, ""}]
				_, blockedShift := unavailable[p.Index][[2]string{w.ID, st.ID}]
				if !blockedAll && !blockedShift {
					available++
				}
			}
			if available < st.WorkersRequired {
				*issues = append(*issues, solvererr.IssueRecord{
					Code: "availability",
					Message: fmt.Sprintf(
						"period %d: shift %q requires %d workers but only %d are available",
						p.Index, st.ID, st.WorkersRequired, available,
					),
					Period: p.Index,
				})
			}
		}
	}
}

// weekdayOf returns the domain Weekday (Monday=0..Sunday=6) for the day the
// period starts on. entity.Period only exposes Start/End as time.Time, so
// the Sunday=0 time.Weekday convention is remapped here the same way
// entity.Period.FirstDateOnWeekday does internally.
func weekdayOf(p entity.Period) entity.Weekday {
	if p.Start.Weekday() == 0 {
		return entity.Sunday
	}
	return entity.Weekday(int(p.Start.Weekday()) - 1)
}
