package memory

import (
	"context"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// WorkerRepository is an in-memory implementation for testing.
type WorkerRepository struct {
	*Store[string, entity.Worker]
}

// NewWorkerRepository creates a new in-memory worker repository.
func NewWorkerRepository() *WorkerRepository {
	return &WorkerRepository{Store: newStore[string, entity.Worker]()}
}

func (r *WorkerRepository) Create(_ context.Context, worker entity.Worker) error {
	r.set(worker.ID, worker)
	return nil
}

func (r *WorkerRepository) GetByID(_ context.Context, id string) (entity.Worker, error) {
	w, ok := r.get(id)
	if !ok {
		return entity.Worker{}, &repository.NotFoundError{ResourceType: "Worker", ResourceID: id}
	}
	return w, nil
}

func (r *WorkerRepository) ListAll(_ context.Context) ([]entity.Worker, error) {
	return r.all(), nil
}

func (r *WorkerRepository) Update(_ context.Context, worker entity.Worker) error {
	if _, ok := r.get(worker.ID); !ok {
		return &repository.NotFoundError{ResourceType: "Worker", ResourceID: worker.ID}
	}
	r.set(worker.ID, worker)
	return nil
}

func (r *WorkerRepository) Delete(_ context.Context, id string) error {
	if !r.delete(id) {
		return &repository.NotFoundError{ResourceType: "Worker", ResourceID: id}
	}
	return nil
}

func (r *WorkerRepository) Count(_ context.Context) (int64, error) {
	return r.count(), nil
}
