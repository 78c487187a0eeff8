// Package entity holds the immutable value records that make up the solver's
// domain model: Worker, ShiftType, Period, Availability, WorkerRequest,
// ConstraintSpec, and the Schedule output types. Every constructor validates
// its invariants eagerly and returns a *solvererr.InvariantError on failure;
// there are no setters, so a value that exists is always valid.
package entity

import (
	"github.com/schedcu/solver/internal/solvererr"
)

// Worker is a person eligible for shift assignment. RestrictedShifts names
// shift types this worker may never be assigned; PreferredShifts names shift
// types that contribute a soft positive signal. The two sets are always
// disjoint -- NewWorker rejects overlap at construction.
type Worker struct {
	ID              string
	Name            string
	WorkerType      string
	RestrictedShift map[string]struct{}
	PreferredShift  map[string]struct{}
	Attributes      map[string]any
}

// NewWorker validates id/name and the restricted/preferred disjointness
// invariant before returning a Worker.
func NewWorker(id, name, workerType string, restricted, preferred []string, attributes map[string]any) (Worker, error) {
	if id == "" {
		return Worker{}, solvererr.NewInvariantError("Worker", "id", "must not be empty")
	}
	if name == "" {
		return Worker{}, solvererr.NewInvariantError("Worker", "name", "must not be empty")
	}

	restrictedSet := toSet(restricted)
	preferredSet := toSet(preferred)

	var overlap []string
	for s := range restrictedSet {
		if _, ok := preferredSet[s]; ok {
			overlap = append(overlap, s)
		}
	}
	if len(overlap) > 0 {
		return Worker{}, solvererr.NewInvariantError("Worker", "restricted/preferred",
			"restricted and preferred shift sets must be disjoint, conflicting on: "+joinStrings(overlap))
	}

	return Worker{
		ID:              id,
		Name:            name,
		WorkerType:      workerType,
		RestrictedShift: restrictedSet,
		PreferredShift:  preferredSet,
		Attributes:      attributes,
	}, nil
}

// IsRestrictedFrom reports whether the worker may never work shiftTypeID.
func (w Worker) IsRestrictedFrom(shiftTypeID string) bool {
	_, ok := w.RestrictedShift[shiftTypeID]
	return ok
}

// Prefers reports whether the worker has a soft preference for shiftTypeID.
func (w Worker) Prefers(shiftTypeID string) bool {
	_, ok := w.PreferredShift[shiftTypeID]
	return ok
}

// Equal compares two Workers ignoring the free-form Attributes map, per the
// domain model's equality invariant.
func (w Worker) Equal(other Worker) bool {
	if w.ID != other.ID || w.Name != other.Name || w.WorkerType != other.WorkerType {
		return false
	}
	return setsEqual(w.RestrictedShift, other.RestrictedShift) && setsEqual(w.PreferredShift, other.PreferredShift)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func joinStrings(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
