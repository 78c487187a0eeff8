package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/schedcu/solver/internal/repository"
)

// SolveJobRepository is an in-memory implementation for testing.
type SolveJobRepository struct {
	*Store[uuid.UUID, repository.SolveJob]
}

// NewSolveJobRepository creates a new in-memory solve job repository.
func NewSolveJobRepository() *SolveJobRepository {
	return &SolveJobRepository{Store: newStore[uuid.UUID, repository.SolveJob]()}
}

func (r *SolveJobRepository) Create(_ context.Context, job repository.SolveJob) error {
	r.set(job.ID, job)
	return nil
}

func (r *SolveJobRepository) GetByID(_ context.Context, id uuid.UUID) (repository.SolveJob, error) {
	job, ok := r.get(id)
	if !ok {
		return repository.SolveJob{}, &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: id.String()}
	}
	return job, nil
}

func (r *SolveJobRepository) GetByStatus(_ context.Context, status repository.SolveJobStatus) ([]repository.SolveJob, error) {
	var out []repository.SolveJob
	for _, job := range r.all() {
		if job.Status == status {
			out = append(out, job)
		}
	}
	return out, nil
}

func (r *SolveJobRepository) GetPending(ctx context.Context) ([]repository.SolveJob, error) {
	return r.GetByStatus(ctx, repository.SolveJobPending)
}

func (r *SolveJobRepository) Update(_ context.Context, job repository.SolveJob) error {
	if _, ok := r.get(job.ID); !ok {
		return &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: job.ID.String()}
	}
	r.set(job.ID, job)
	return nil
}

func (r *SolveJobRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.delete(id) {
		return &repository.NotFoundError{ResourceType: "SolveJob", ResourceID: id.String()}
	}
	return nil
}

func (r *SolveJobRepository) Count(_ context.Context) (int64, error) {
	return r.count(), nil
}

func (r *SolveJobRepository) CleanupOldJobs(_ context.Context, daysOld int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -daysOld)
	var removed int64
	for _, job := range r.all() {
		if job.CreatedAt.Before(cutoff) && (job.Status == repository.SolveJobSucceeded || job.Status == repository.SolveJobFailed || job.Status == repository.SolveJobCancelled) {
			if r.delete(job.ID) {
				removed++
			}
		}
	}
	return removed, nil
}
