package entity

import (
	"time"

	"github.com/schedcu/solver/internal/solvererr"
)

// Period is one contiguous date interval [Start, End], both ends included, in the schedule
// horizon, identified by its integer index. Periods belonging to one
// Schedule are contiguous, non-overlapping, and ordered by Index -- the
// caller building period_dates (see solver.Inputs) is responsible for that
// ordering; Period itself only validates its own bounds.
type Period struct {
	Index int
	Start time.Time
	End   time.Time
}

// NewPeriod validates that End is not before Start and that Index is
// non-negative.
func NewPeriod(index int, start, end time.Time) (Period, error) {
	if index < 0 {
		return Period{}, solvererr.NewInvariantError("Period", "index", "must be non-negative")
	}
	if end.Before(start) {
		return Period{}, solvererr.NewInvariantError("Period", "end", "must not be before start")
	}
	return Period{Index: index, Start: start, End: end}, nil
}

// Overlaps reports whether the closed interval [start, end] intersects
// this period's date bounds; touching endpoints count as overlap.
func (p Period) Overlaps(start, end time.Time) bool {
	return !start.After(p.End) && !end.Before(p.Start)
}

// FirstDateOnWeekday returns the first date within the period whose weekday
// is in days, and true, or the zero time and false if no date qualifies.
func (p Period) FirstDateOnWeekday(days map[Weekday]struct{}) (time.Time, bool) {
	if days == nil {
		return p.Start, true
	}
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		if _, ok := days[goWeekdayToWeekday(d.Weekday())]; ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func goWeekdayToWeekday(w time.Weekday) Weekday {
	// time.Weekday is Sunday=0..Saturday=6; the domain model is Monday=0..Sunday=6.
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(int(w) - 1)
}
