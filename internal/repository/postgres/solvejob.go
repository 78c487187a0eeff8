package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/schedcu/solver/internal/repository"
)

// SolveJobRepository implements repository.SolveJobRepository for PostgreSQL.
type SolveJobRepository struct {
	db *sql.DB
}

// NewSolveJobRepository creates a new SolveJobRepository.
func NewSolveJobRepository(db *sql.DB) *SolveJobRepository {
	return &SolveJobRepository{db: db}
}

const solveJobColumns = `id, schedule_id, status, payload, result_summary, created_at, updated_at`

func (r *SolveJobRepository) Create(ctx context.Context, job repository.SolveJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	query := `
		INSERT INTO solve_jobs (` + solveJobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.ScheduleID,
		string(job.Status),
		job.Payload,
		job.ResultSummary,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create solve job: %w", err)
	}
	return nil
}

func scanSolveJob(scan func(...any) error) (repository.SolveJob, error) {
	var job repository.SolveJob
	var status string
	if err := scan(&job.ID, &job.ScheduleID, &status, &job.Payload, &job.ResultSummary, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return repository.SolveJob{}, err
	}
	job.Status = repository.SolveJobStatus(status)
	return job, nil
}

func (r *SolveJobRepository) GetByID(ctx context.Context, id uuid.UUID) (repository.SolveJob, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+solveJobColumns+` FROM solve_jobs WHERE id = $1`, id)
	job, err := scanSolveJob(row.Scan)
	if err == sql.ErrNoRows {
		return repository.SolveJob{}, &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: id.String()}
	}
	if err != nil {
		return repository.SolveJob{}, fmt.Errorf("failed to get solve job: %w", err)
	}
	return job, nil
}

func (r *SolveJobRepository) queryByWhere(ctx context.Context, where string, args ...any) ([]repository.SolveJob, error) {
	query := `SELECT ` + solveJobColumns + ` FROM solve_jobs` + where + ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query solve jobs: %w", err)
	}
	defer rows.Close()

	var out []repository.SolveJob
	for rows.Next() {
		job, err := scanSolveJob(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve job: %w", err)
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *SolveJobRepository) GetByStatus(ctx context.Context, status repository.SolveJobStatus) ([]repository.SolveJob, error) {
	return r.queryByWhere(ctx, ` WHERE status = $1`, string(status))
}

func (r *SolveJobRepository) GetPending(ctx context.Context) ([]repository.SolveJob, error) {
	return r.GetByStatus(ctx, repository.SolveJobPending)
}

func (r *SolveJobRepository) Update(ctx context.Context, job repository.SolveJob) error {
	query := `
		UPDATE solve_jobs
		SET status = $2, payload = $3, result_summary = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, job.ID, string(job.Status), job.Payload, job.ResultSummary, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update solve job: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: job.ID.String()}
	}
	return nil
}

func (r *SolveJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM solve_jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete solve job: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: id.String()}
	}
	return nil
}

func (r *SolveJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solve_jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solve jobs: %w", err)
	}
	return count, nil
}

func (r *SolveJobRepository) CleanupOldJobs(ctx context.Context, daysOld int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -daysOld)
	query := `
		DELETE FROM solve_jobs
		WHERE created_at < $1 AND status IN ('succeeded', 'failed', 'cancelled')
	`
	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old solve jobs: %w", err)
	}
	return result.RowsAffected()
}
