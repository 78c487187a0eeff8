package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/schedcu/solver/internal/entity"
)

// WorkerRequestRepository implements repository.WorkerRequestRepository for PostgreSQL.
type WorkerRequestRepository struct {
	db *sql.DB
}

// NewWorkerRequestRepository creates a new WorkerRequestRepository.
func NewWorkerRequestRepository(db *sql.DB) *WorkerRequestRepository {
	return &WorkerRequestRepository{db: db}
}

const workerRequestColumns = `worker_id, shift_type_id, start_time, end_time, polarity, priority`

func (r *WorkerRequestRepository) Create(ctx context.Context, request entity.WorkerRequest) error {
	query := `
		INSERT INTO worker_requests (` + workerRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		request.WorkerID,
		request.ShiftTypeID,
		request.Start,
		request.End,
		int(request.Polarity),
		request.Priority,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker request: %w", err)
	}
	return nil
}

func scanWorkerRequest(scan func(...any) error) (entity.WorkerRequest, error) {
	var req entity.WorkerRequest
	var polarity int
	if err := scan(&req.WorkerID, &req.ShiftTypeID, &req.Start, &req.End, &polarity, &req.Priority); err != nil {
		return entity.WorkerRequest{}, err
	}
	req.Polarity = entity.RequestPolarity(polarity)
	return req, nil
}

func (r *WorkerRequestRepository) ListByWorker(ctx context.Context, workerID string) ([]entity.WorkerRequest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+workerRequestColumns+` FROM worker_requests WHERE worker_id = $1`, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker requests by worker: %w", err)
	}
	defer rows.Close()

	var out []entity.WorkerRequest
	for rows.Next() {
		req, err := scanWorkerRequest(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *WorkerRequestRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.WorkerRequest, error) {
	query := `SELECT ` + workerRequestColumns + ` FROM worker_requests WHERE start_time <= $2 AND end_time >= $1`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker requests by date range: %w", err)
	}
	defer rows.Close()

	var out []entity.WorkerRequest
	for rows.Next() {
		req, err := scanWorkerRequest(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *WorkerRequestRepository) Delete(ctx context.Context, workerID, shiftTypeID string, start, end time.Time) error {
	query := `DELETE FROM worker_requests WHERE worker_id = $1 AND shift_type_id = $2 AND start_time = $3 AND end_time = $4`
	_, err := r.db.ExecContext(ctx, query, workerID, shiftTypeID, start, end)
	if err != nil {
		return fmt.Errorf("failed to delete worker request: %w", err)
	}
	return nil
}

func (r *WorkerRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM worker_requests`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count worker requests: %w", err)
	}
	return count, nil
}
