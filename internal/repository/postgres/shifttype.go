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

// ShiftTypeRepository implements repository.ShiftTypeRepository for PostgreSQL.
type ShiftTypeRepository struct {
	db *sql.DB
}

// NewShiftTypeRepository creates a new ShiftTypeRepository.
func NewShiftTypeRepository(db *sql.DB) *ShiftTypeRepository {
	return &ShiftTypeRepository{db: db}
}

func applicableDaysToInts(days map[entity.Weekday]struct{}) []int64 {
	if days == nil {
		return nil
	}
	out := make([]int64, 0, len(days))
	for d := range days {
		out = append(out, int64(d))
	}
	return out
}

func intsToApplicableDays(days []int64) map[entity.Weekday]struct{} {
	if days == nil {
		return nil
	}
	out := make(map[entity.Weekday]struct{}, len(days))
	for _, d := range days {
		out[entity.Weekday(d)] = struct{}{}
	}
	return out
}

func (r *ShiftTypeRepository) Create(ctx context.Context, shiftType entity.ShiftType) error {
	attrsJSON, err := json.Marshal(shiftType.RequiredAttrs)
	if err != nil {
		return fmt.Errorf("failed to marshal required attrs: %w", err)
	}

	query := `
		INSERT INTO shift_types (
			id, name, category, start_time, end_time, duration_hours,
			is_undesirable, workers_required, applicable_days, required_attrs
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.ExecContext(ctx, query,
		shiftType.ID,
		shiftType.Name,
		shiftType.Category,
		shiftType.StartTime,
		shiftType.EndTime,
		shiftType.DurationHours,
		shiftType.IsUndesirable,
		shiftType.WorkersRequired,
		pq.Array(applicableDaysToInts(shiftType.ApplicableDays)),
		attrsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift type: %w", err)
	}
	return nil
}

func (r *ShiftTypeRepository) scanShiftType(scan func(...any) error) (entity.ShiftType, error) {
	var st entity.ShiftType
	var days []int64
	var attrsJSON []byte

	if err := scan(&st.ID, &st.Name, &st.Category, &st.StartTime, &st.EndTime,
		&st.DurationHours, &st.IsUndesirable, &st.WorkersRequired, pq.Array(&days), &attrsJSON); err != nil {
		return entity.ShiftType{}, err
	}
	st.ApplicableDays = intsToApplicableDays(days)
	if len(attrsJSON) > 0 {
		if err := json.Unmarshal(attrsJSON, &st.RequiredAttrs); err != nil {
			return entity.ShiftType{}, fmt.Errorf("failed to unmarshal required attrs: %w", err)
		}
	}
	return st, nil
}

const shiftTypeColumns = `id, name, category, start_time, end_time, duration_hours, is_undesirable, workers_required, applicable_days, required_attrs`

func (r *ShiftTypeRepository) GetByID(ctx context.Context, id string) (entity.ShiftType, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+shiftTypeColumns+` FROM shift_types WHERE id = $1`, id)
	st, err := r.scanShiftType(row.Scan)
	if err == sql.ErrNoRows {
		return entity.ShiftType{}, &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: id}
	}
	if err != nil {
		return entity.ShiftType{}, fmt.Errorf("failed to get shift type: %w", err)
	}
	return st, nil
}

func (r *ShiftTypeRepository) ListAll(ctx context.Context) ([]entity.ShiftType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+shiftTypeColumns+` FROM shift_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift types: %w", err)
	}
	defer rows.Close()

	var out []entity.ShiftType
	for rows.Next() {
		st, err := r.scanShiftType(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *ShiftTypeRepository) Update(ctx context.Context, shiftType entity.ShiftType) error {
	attrsJSON, err := json.Marshal(shiftType.RequiredAttrs)
	if err != nil {
		return fmt.Errorf("failed to marshal required attrs: %w", err)
	}

	query := `
		UPDATE shift_types
		SET name = $2, category = $3, start_time = $4, end_time = $5, duration_hours = $6,
		    is_undesirable = $7, workers_required = $8, applicable_days = $9, required_attrs = $10
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		shiftType.ID,
		shiftType.Name,
		shiftType.Category,
		shiftType.StartTime,
		shiftType.EndTime,
		shiftType.DurationHours,
		shiftType.IsUndesirable,
		shiftType.WorkersRequired,
		pq.Array(applicableDaysToInts(shiftType.ApplicableDays)),
		attrsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift type: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: shiftType.ID}
	}
	return nil
}

func (r *ShiftTypeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shift_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: id}
	}
	return nil
}

func (r *ShiftTypeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shift_types`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shift types: %w", err)
	}
	return count, nil
}
