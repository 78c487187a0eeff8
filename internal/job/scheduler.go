package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/solver"
)

// JobScheduler manages solve job enqueueing to Asynq.
type JobScheduler struct {
	client *asynq.Client
}

// NewJobScheduler creates a new job scheduler.
func NewJobScheduler(redisAddr string) (*JobScheduler, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})

	if err := client.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &JobScheduler{client: client}, nil
}

// TypeSolveSchedule is the Asynq task type for an asynchronous solve request.
const TypeSolveSchedule = "schedule:solve"

// SolvePayload is the Asynq task payload for a solve job. It carries the
// same fields as solver.Inputs plus the subset of solver.Config that can
// cross a JSON boundary (the Cancel context and OnProgress callback cannot,
// so the handler builds those locally).
type SolvePayload struct {
	JobID            uuid.UUID                        `json:"job_id"`
	ScheduleID       string                            `json:"schedule_id"`
	Inputs           solver.Inputs                     `json:"inputs"`
	ConstraintSpecs  map[string]entity.ConstraintSpec  `json:"constraint_specs"`
	TimeLimitSeconds int                                `json:"time_limit_seconds"`
	NumWorkers       int                                `json:"num_workers"`
	RelativeGap      float64                            `json:"relative_gap"`
}

// EnqueueSolve enqueues an asynchronous solve job, keyed by a pre-created
// SolveJob id so its status can be polled through the repository while the
// task runs.
func (s *JobScheduler) EnqueueSolve(ctx context.Context, payload SolvePayload) (*asynq.TaskInfo, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal solve payload: %w", err)
	}

	task := asynq.NewTask(TypeSolveSchedule, payloadBytes)

	timeout := time.Duration(payload.TimeLimitSeconds+30) * time.Second
	if timeout < 2*time.Minute {
		timeout = 2 * time.Minute
	}

	info, err := s.client.EnqueueContext(ctx, task, asynq.MaxRetry(1), asynq.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue solve job: %w", err)
	}
	return info, nil
}

// Close closes the job scheduler and releases resources.
func (s *JobScheduler) Close() error {
	return s.client.Close()
}
