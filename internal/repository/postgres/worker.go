package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// WorkerRepository implements repository.WorkerRepository for PostgreSQL.
type WorkerRepository struct {
	db *sql.DB
}

// NewWorkerRepository creates a new WorkerRepository.
func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func setKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (r *WorkerRepository) Create(ctx context.Context, worker entity.Worker) error {
	attrsJSON, err := json.Marshal(worker.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	query := `
		INSERT INTO workers (id, name, worker_type, restricted_shifts, preferred_shifts, attributes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		worker.ID,
		worker.Name,
		worker.WorkerType,
		pq.Array(setKeys(worker.RestrictedShift)),
		pq.Array(setKeys(worker.PreferredShift)),
		attrsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

func (r *WorkerRepository) scanWorker(scan func(...any) error) (entity.Worker, error) {
	var w entity.Worker
	var restricted, preferred []string
	var attrsJSON []byte

	if err := scan(&w.ID, &w.Name, &w.WorkerType, pq.Array(&restricted), pq.Array(&preferred), &attrsJSON); err != nil {
		return entity.Worker{}, err
	}

	w.RestrictedShift = make(map[string]struct{}, len(restricted))
	for _, s := range restricted {
		w.RestrictedShift[s] = struct{}{}
	}
	w.PreferredShift = make(map[string]struct{}, len(preferred))
	for _, s := range preferred {
		w.PreferredShift[s] = struct{}{}
	}
	if len(attrsJSON) > 0 {
		if err := json.Unmarshal(attrsJSON, &w.Attributes); err != nil {
			return entity.Worker{}, fmt.Errorf("failed to unmarshal attributes: %w", err)
		}
	}
	return w, nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string) (entity.Worker, error) {
	query := `SELECT id, name, worker_type, restricted_shifts, preferred_shifts, attributes FROM workers WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	w, err := r.scanWorker(row.Scan)
	if err == sql.ErrNoRows {
		return entity.Worker{}, &repository.NotFoundError{ResourceType: "Worker", ResourceID: id}
	}
	if err != nil {
		return entity.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

func (r *WorkerRepository) ListAll(ctx context.Context) ([]entity.Worker, error) {
	query := `SELECT id, name, worker_type, restricted_shifts, preferred_shifts, attributes FROM workers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var out []entity.Worker
	for rows.Next() {
		w, err := r.scanWorker(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WorkerRepository) Update(ctx context.Context, worker entity.Worker) error {
	attrsJSON, err := json.Marshal(worker.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	query := `
		UPDATE workers
		SET name = $2, worker_type = $3, restricted_shifts = $4, preferred_shifts = $5, attributes = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		worker.ID,
		worker.Name,
		worker.WorkerType,
		pq.Array(setKeys(worker.RestrictedShift)),
		pq.Array(setKeys(worker.PreferredShift)),
		attrsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "Worker", ResourceID: worker.ID}
	}
	return nil
}

func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "Worker", ResourceID: id}
	}
	return nil
}

func (r *WorkerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}
	return count, nil
}
