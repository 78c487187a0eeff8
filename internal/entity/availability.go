package entity

import (
	"time"

	"github.com/schedcu/solver/internal/solvererr"
)

// AvailabilityKind enumerates the polarity of an Availability record.
type AvailabilityKind int

const (
	Unavailable AvailabilityKind = iota
	Available
	Preferred
)

// Availability records a worker's availability over a date range, optionally
// scoped to a single shift type. An empty ShiftTypeID means the record
// applies to every shift type.
type Availability struct {
	WorkerID    string
	Start       time.Time
	End         time.Time
	Kind        AvailabilityKind
	ShiftTypeID string // empty means unscoped
}

// NewAvailability validates the worker id and date range.
func NewAvailability(workerID string, start, end time.Time, kind AvailabilityKind, shiftTypeID string) (Availability, error) {
	if workerID == "" {
		return Availability{}, solvererr.NewInvariantError("Availability", "worker_id", "must not be empty")
	}
	if end.Before(start) {
		return Availability{}, solvererr.NewInvariantError("Availability", "end", "must not be before start")
	}
	return Availability{WorkerID: workerID, Start: start, End: end, Kind: kind, ShiftTypeID: shiftTypeID}, nil
}

// Scoped reports whether this record applies only to a single shift type.
func (a Availability) Scoped() bool {
	return a.ShiftTypeID != ""
}

// AppliesTo reports whether this record covers shiftTypeID, accounting for
// scoping.
func (a Availability) AppliesTo(shiftTypeID string) bool {
	return !a.Scoped() || a.ShiftTypeID == shiftTypeID
}

// OverlapsPeriod reports whether this record's date range overlaps p.
func (a Availability) OverlapsPeriod(p Period) bool {
	return p.Overlaps(a.Start, a.End)
}

// RequestPolarity enumerates whether a WorkerRequest is a positive ("I want
// this") or negative ("I don't want this") signal.
type RequestPolarity int

const (
	Positive RequestPolarity = iota
	Negative
)

// WorkerRequest is a worker's request to work (or not work) a shift type
// over a date range, with a priority used to weigh competing requests.
// The core's built-in constraint set does not currently consume
// WorkerRequest -- see solver.Inputs.WorkerRequests -- but the field is
// threaded through apply() context so a future request-aware constraint can
// read it without a signature change.
type WorkerRequest struct {
	WorkerID    string
	ShiftTypeID string
	Start       time.Time
	End         time.Time
	Polarity    RequestPolarity
	Priority    int
}

// NewWorkerRequest validates identifiers, date range, and priority.
func NewWorkerRequest(workerID, shiftTypeID string, start, end time.Time, polarity RequestPolarity, priority int) (WorkerRequest, error) {
	if workerID == "" {
		return WorkerRequest{}, solvererr.NewInvariantError("WorkerRequest", "worker_id", "must not be empty")
	}
	if shiftTypeID == "" {
		return WorkerRequest{}, solvererr.NewInvariantError("WorkerRequest", "shift_type_id", "must not be empty")
	}
	if end.Before(start) {
		return WorkerRequest{}, solvererr.NewInvariantError("WorkerRequest", "end", "must not be before start")
	}
	if priority < 0 {
		return WorkerRequest{}, solvererr.NewInvariantError("WorkerRequest", "priority", "must be non-negative")
	}
	return WorkerRequest{
		WorkerID:    workerID,
		ShiftTypeID: shiftTypeID,
		Start:       start,
		End:         end,
		Polarity:    polarity,
		Priority:    priority,
	}, nil
}
