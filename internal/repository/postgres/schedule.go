package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// ScheduleRepository implements repository.ScheduleRepository for PostgreSQL.
//
// A solved schedule's periods, workers and shift types are stored as three
// JSONB columns rather than normalized tables: the solver never queries
// into a persisted schedule's internals, only the whole record, so the
// coverage_calculation pattern of one JSON column per structured result
// fits better here than a join-heavy relational layout.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule entity.Schedule) error {
	periodsJSON, err := json.Marshal(schedule.Periods)
	if err != nil {
		return fmt.Errorf("failed to marshal periods: %w", err)
	}
	workersJSON, err := json.Marshal(schedule.Workers)
	if err != nil {
		return fmt.Errorf("failed to marshal workers: %w", err)
	}
	shiftTypesJSON, err := json.Marshal(schedule.ShiftTypes)
	if err != nil {
		return fmt.Errorf("failed to marshal shift types: %w", err)
	}

	query := `
		INSERT INTO schedules (schedule_id, start_date, end_date, period_type, periods, workers, shift_types)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		schedule.ScheduleID,
		schedule.StartDate,
		schedule.EndDate,
		schedule.PeriodType,
		periodsJSON,
		workersJSON,
		shiftTypesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func scanSchedule(scan func(...any) error) (entity.Schedule, error) {
	var s entity.Schedule
	var periodsJSON, workersJSON, shiftTypesJSON []byte

	if err := scan(&s.ScheduleID, &s.StartDate, &s.EndDate, &s.PeriodType, &periodsJSON, &workersJSON, &shiftTypesJSON); err != nil {
		return entity.Schedule{}, err
	}
	if len(periodsJSON) > 0 {
		if err := json.Unmarshal(periodsJSON, &s.Periods); err != nil {
			return entity.Schedule{}, fmt.Errorf("failed to unmarshal periods: %w", err)
		}
	}
	if len(workersJSON) > 0 {
		if err := json.Unmarshal(workersJSON, &s.Workers); err != nil {
			return entity.Schedule{}, fmt.Errorf("failed to unmarshal workers: %w", err)
		}
	}
	if len(shiftTypesJSON) > 0 {
		if err := json.Unmarshal(shiftTypesJSON, &s.ShiftTypes); err != nil {
			return entity.Schedule{}, fmt.Errorf("failed to unmarshal shift types: %w", err)
		}
	}
	return s, nil
}

const scheduleColumns = `schedule_id, start_date, end_date, period_type, periods, workers, shift_types`

func (r *ScheduleRepository) GetByID(ctx context.Context, scheduleID string) (entity.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE schedule_id = $1`, scheduleID)
	s, err := scanSchedule(row.Scan)
	if err == sql.ErrNoRows {
		return entity.Schedule{}, &repository.NotFoundError{ResourceType: "Schedule", ResourceID: scheduleID}
	}
	if err != nil {
		return entity.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s, nil
}

func (r *ScheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE start_date <= $2 AND end_date >= $1 ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules by date range: %w", err)
	}
	defer rows.Close()

	var out []entity.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "Schedule", ResourceID: scheduleID}
	}
	return nil
}

func (r *ScheduleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedules`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count schedules: %w", err)
	}
	return count, nil
}
