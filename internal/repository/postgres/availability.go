package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/schedcu/solver/internal/entity"
)

// AvailabilityRepository implements repository.AvailabilityRepository for PostgreSQL.
type AvailabilityRepository struct {
	db *sql.DB
}

// NewAvailabilityRepository creates a new AvailabilityRepository.
func NewAvailabilityRepository(db *sql.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, availability entity.Availability) error {
	query := `
		INSERT INTO availabilities (worker_id, start_time, end_time, kind, shift_type_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		availability.WorkerID,
		availability.Start,
		availability.End,
		int(availability.Kind),
		availability.ShiftTypeID,
	)
	if err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}
	return nil
}

func scanAvailability(scan func(...any) error) (entity.Availability, error) {
	var a entity.Availability
	var kind int
	if err := scan(&a.WorkerID, &a.Start, &a.End, &kind, &a.ShiftTypeID); err != nil {
		return entity.Availability{}, err
	}
	a.Kind = entity.AvailabilityKind(kind)
	return a, nil
}

const availabilityColumns = `worker_id, start_time, end_time, kind, shift_type_id`

func (r *AvailabilityRepository) ListByWorker(ctx context.Context, workerID string) ([]entity.Availability, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+availabilityColumns+` FROM availabilities WHERE worker_id = $1`, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query availabilities by worker: %w", err)
	}
	defer rows.Close()

	var out []entity.Availability
	for rows.Next() {
		a, err := scanAvailability(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AvailabilityRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Availability, error) {
	query := `SELECT ` + availabilityColumns + ` FROM availabilities WHERE start_time <= $2 AND end_time >= $1`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query availabilities by date range: %w", err)
	}
	defer rows.Close()

	var out []entity.Availability
	for rows.Next() {
		a, err := scanAvailability(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AvailabilityRepository) Delete(ctx context.Context, workerID string, start, end time.Time) error {
	query := `DELETE FROM availabilities WHERE worker_id = $1 AND start_time = $2 AND end_time = $3`
	_, err := r.db.ExecContext(ctx, query, workerID, start, end)
	if err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM availabilities`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count availabilities: %w", err)
	}
	return count, nil
}
