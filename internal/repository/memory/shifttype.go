package memory

import (
	"context"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// ShiftTypeRepository is an in-memory implementation for testing.
type ShiftTypeRepository struct {
	*Store[string, entity.ShiftType]
}

// NewShiftTypeRepository creates a new in-memory shift type repository.
func NewShiftTypeRepository() *ShiftTypeRepository {
	return &ShiftTypeRepository{Store: newStore[string, entity.ShiftType]()}
}

func (r *ShiftTypeRepository) Create(_ context.Context, shiftType entity.ShiftType) error {
	r.set(shiftType.ID, shiftType)
	return nil
}

func (r *ShiftTypeRepository) GetByID(_ context.Context, id string) (entity.ShiftType, error) {
	st, ok := r.get(id)
	if !ok {
		return entity.ShiftType{}, &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: id}
	}
	return st, nil
}

func (r *ShiftTypeRepository) ListAll(_ context.Context) ([]entity.ShiftType, error) {
	return r.all(), nil
}

func (r *ShiftTypeRepository) Update(_ context.Context, shiftType entity.ShiftType) error {
	if _, ok := r.get(shiftType.ID); !ok {
		return &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: shiftType.ID}
	}
	r.set(shiftType.ID, shiftType)
	return nil
}

func (r *ShiftTypeRepository) Delete(_ context.Context, id string) error {
	if !r.delete(id) {
		return &repository.NotFoundError{ResourceType: "ShiftType", ResourceID: id}
	}
	return nil
}

func (r *ShiftTypeRepository) Count(_ context.Context) (int64, error) {
	return r.count(), nil
}
