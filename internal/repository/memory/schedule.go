package memory

import (
	"context"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// ScheduleRepository is an in-memory implementation for testing.
type ScheduleRepository struct {
	*Store[string, entity.Schedule]
}

// NewScheduleRepository creates a new in-memory schedule repository.
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{Store: newStore[string, entity.Schedule]()}
}

func (r *ScheduleRepository) Create(_ context.Context, schedule entity.Schedule) error {
	r.set(schedule.ScheduleID, schedule)
	return nil
}

func (r *ScheduleRepository) GetByID(_ context.Context, scheduleID string) (entity.Schedule, error) {
	s, ok := r.get(scheduleID)
	if !ok {
		return entity.Schedule{}, &repository.NotFoundError{ResourceType: "Schedule", ResourceID: scheduleID}
	}
	return s, nil
}

func (r *ScheduleRepository) ListByDateRange(_ context.Context, start, end time.Time) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range r.all() {
		if !s.StartDate.After(end) && !s.EndDate.Before(start) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ScheduleRepository) Delete(_ context.Context, scheduleID string) error {
	if !r.delete(scheduleID) {
		return &repository.NotFoundError{ResourceType: "Schedule", ResourceID: scheduleID}
	}
	return nil
}

func (r *ScheduleRepository) Count(_ context.Context) (int64, error) {
	return r.count(), nil
}
