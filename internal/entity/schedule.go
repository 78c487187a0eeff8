package entity

import (
	"time"

	"github.com/schedcu/solver/internal/solvererr"
)

// ShiftInstance is one concrete occurrence of a shift type on a date within
// a period, optionally assigned to a worker. The Solver Driver produces
// these during solution extraction; Non-assigned instances (WorkerID empty)
// do not occur in a SolverResult's Schedule -- every ShiftInstance in the
// output is already assigned.
type ShiftInstance struct {
	ShiftTypeID string
	PeriodIndex int
	Date        time.Time
	WorkerID    string
}

// PeriodAssignment holds, for one period, the mapping from worker id to the
// list of ShiftInstances assigned to that worker in that period.
type PeriodAssignment struct {
	PeriodIndex int
	Start       time.Time
	End         time.Time
	Assignments map[string][]ShiftInstance // worker_id -> instances
}

// NewPeriodAssignment validates that End is not before Start.
func NewPeriodAssignment(periodIndex int, start, end time.Time) (PeriodAssignment, error) {
	if end.Before(start) {
		return PeriodAssignment{}, solvererr.NewInvariantError("PeriodAssignment", "end", "must not be before start")
	}
	return PeriodAssignment{
		PeriodIndex: periodIndex,
		Start:       start,
		End:         end,
		Assignments: make(map[string][]ShiftInstance),
	}, nil
}

// Add appends one ShiftInstance under the given worker id.
func (pa *PeriodAssignment) Add(workerID string, instance ShiftInstance) {
	pa.Assignments[workerID] = append(pa.Assignments[workerID], instance)
}

// ShiftsFor returns the ShiftInstances assigned to workerID in this period.
func (pa PeriodAssignment) ShiftsFor(workerID string) []ShiftInstance {
	return pa.Assignments[workerID]
}

// Schedule is the fully populated output of a successful solve: an ordered
// sequence of PeriodAssignments over the original worker/shift-type inputs.
type Schedule struct {
	ScheduleID string
	StartDate  time.Time
	EndDate    time.Time
	PeriodType string
	Periods    []PeriodAssignment
	Workers    []Worker
	ShiftTypes []ShiftType
}

// NewSchedule validates ScheduleID and the date range.
func NewSchedule(scheduleID string, startDate, endDate time.Time, periodType string, periods []PeriodAssignment, workers []Worker, shiftTypes []ShiftType) (Schedule, error) {
	if scheduleID == "" {
		return Schedule{}, solvererr.NewInvariantError("Schedule", "schedule_id", "must not be empty")
	}
	if !endDate.After(startDate) {
		return Schedule{}, solvererr.NewInvariantError("Schedule", "end_date", "must be after start_date")
	}
	return Schedule{
		ScheduleID: scheduleID,
		StartDate:  startDate,
		EndDate:    endDate,
		PeriodType: periodType,
		Periods:    periods,
		Workers:    workers,
		ShiftTypes: shiftTypes,
	}, nil
}

// NumPeriods returns the number of periods in the schedule.
func (s Schedule) NumPeriods() int {
	return len(s.Periods)
}

// WorkerByID looks up a worker by id, returning ok=false if absent.
func (s Schedule) WorkerByID(id string) (Worker, bool) {
	for _, w := range s.Workers {
		if w.ID == id {
			return w, true
		}
	}
	return Worker{}, false
}

// ShiftTypeByID looks up a shift type by id, returning ok=false if absent.
func (s Schedule) ShiftTypeByID(id string) (ShiftType, bool) {
	for _, st := range s.ShiftTypes {
		if st.ID == id {
			return st, true
		}
	}
	return ShiftType{}, false
}
