package entity

import (
	"github.com/schedcu/solver/internal/solvererr"
)

// Weekday indexes {Mon..Sun} as 0..6, the convention used by
// ShiftType.ApplicableDays.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ShiftType is a template describing a recurring shift: its time window,
// duration, staffing requirement, and the days of the week it recurs on.
// A nil ApplicableDays means the shift applies on every day.
type ShiftType struct {
	ID               string
	Name             string
	Category         string
	StartTime        string // "HH:MM", kept as a string; the core never parses clock time
	EndTime          string
	DurationHours    float64
	IsUndesirable    bool
	WorkersRequired  int
	ApplicableDays   map[Weekday]struct{} // nil means every day
	RequiredAttrs    map[string]any
}

// NewShiftType validates duration, staffing, and applicable-day invariants.
func NewShiftType(id, name, category, startTime, endTime string, durationHours float64, isUndesirable bool, workersRequired int, applicableDays []Weekday, requiredAttrs map[string]any) (ShiftType, error) {
	if id == "" {
		return ShiftType{}, solvererr.NewInvariantError("ShiftType", "id", "must not be empty")
	}
	if durationHours <= 0 {
		return ShiftType{}, solvererr.NewInvariantError("ShiftType", "duration_hours", "must be positive")
	}
	if workersRequired < 1 {
		return ShiftType{}, solvererr.NewInvariantError("ShiftType", "workers_required", "must be at least 1")
	}

	var days map[Weekday]struct{}
	if applicableDays != nil {
		days = make(map[Weekday]struct{}, len(applicableDays))
		for _, d := range applicableDays {
			if d < Monday || d > Sunday {
				return ShiftType{}, solvererr.NewInvariantError("ShiftType", "applicable_days", "weekday out of range 0..6")
			}
			days[d] = struct{}{}
		}
	}

	return ShiftType{
		ID:              id,
		Name:            name,
		Category:        category,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationHours:   durationHours,
		IsUndesirable:   isUndesirable,
		WorkersRequired: workersRequired,
		ApplicableDays:  days,
		RequiredAttrs:   requiredAttrs,
	}, nil
}

// IsApplicableOn reports whether the shift recurs on the given weekday. A
// shift with no ApplicableDays set applies on every day.
func (s ShiftType) IsApplicableOn(day Weekday) bool {
	if s.ApplicableDays == nil {
		return true
	}
	_, ok := s.ApplicableDays[day]
	return ok
}

// Equal compares two ShiftTypes ignoring RequiredAttrs, per the domain
// model's equality invariant.
func (s ShiftType) Equal(other ShiftType) bool {
	if s.ID != other.ID || s.Name != other.Name || s.Category != other.Category ||
		s.StartTime != other.StartTime || s.EndTime != other.EndTime ||
		s.DurationHours != other.DurationHours || s.IsUndesirable != other.IsUndesirable ||
		s.WorkersRequired != other.WorkersRequired {
		return false
	}
	if len(s.ApplicableDays) != len(other.ApplicableDays) {
		return false
	}
	for d := range s.ApplicableDays {
		if _, ok := other.ApplicableDays[d]; !ok {
			return false
		}
	}
	return true
}
