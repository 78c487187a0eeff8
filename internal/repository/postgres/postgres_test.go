// Package postgres provides PostgreSQL repository implementations with integration tests.
package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"database/sql"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
)

// PostgresTestHelper provides utilities for PostgreSQL integration tests.
type PostgresTestHelper struct {
	db        *sql.DB
	container testcontainers.Container
	ctx       context.Context
}

// NewPostgresTestHelper creates and starts a PostgreSQL container for testing.
func NewPostgresTestHelper(ctx context.Context, t *testing.T) *PostgresTestHelper {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "solver_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://test:test@%s:%s/solver_test?sslmode=disable", host, port.Port())

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, Migrate(ctx, db))

	return &PostgresTestHelper{db: db, container: container, ctx: ctx}
}

// Close stops the PostgreSQL container and closes the database connection.
func (h *PostgresTestHelper) Close(t *testing.T) {
	if err := h.db.Close(); err != nil {
		t.Logf("warning: failed to close database: %v", err)
	}
	if err := h.container.Terminate(h.ctx); err != nil {
		t.Logf("warning: failed to terminate container: %v", err)
	}
}

// DB returns the database connection.
func (h *PostgresTestHelper) DB() *sql.DB {
	return h.db
}

// ClearTables truncates all tables, for test isolation.
func (h *PostgresTestHelper) ClearTables(ctx context.Context, t *testing.T) {
	tables := []string{"solve_jobs", "schedules", "worker_requests", "availabilities", "shift_types", "workers"}
	for _, table := range tables {
		if _, err := h.db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Logf("warning: failed to truncate table %s: %v", table, err)
		}
	}
}

func TestWorkerRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	helper := NewPostgresTestHelper(ctx, t)
	defer helper.Close(t)

	repo := NewWorkerRepository(helper.DB())

	worker, err := entity.NewWorker("w1", "Alice", "RN", []string{"night"}, []string{"day"}, map[string]any{"seniority": "senior"})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, worker))

	fetched, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, worker.Name, fetched.Name)
	require.Contains(t, fetched.RestrictedShift, "night")
	require.Contains(t, fetched.PreferredShift, "day")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	worker.Name = "Alice B."
	require.NoError(t, repo.Update(ctx, worker))
	fetched, err = repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, "Alice B.", fetched.Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, "w1"))
	_, err = repo.GetByID(ctx, "w1")
	require.True(t, repository.IsNotFound(err))
}

func TestShiftTypeRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	helper := NewPostgresTestHelper(ctx, t)
	defer helper.Close(t)

	repo := NewShiftTypeRepository(helper.DB())

	st, err := entity.NewShiftType("night", "Night Shift", "nursing", "19:00", "07:00", 12, true, 2,
		[]entity.Weekday{entity.Monday, entity.Tuesday}, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, st))

	fetched, err := repo.GetByID(ctx, "night")
	require.NoError(t, err)
	require.Equal(t, st.WorkersRequired, fetched.WorkersRequired)
	require.Contains(t, fetched.ApplicableDays, entity.Monday)

	require.NoError(t, repo.Delete(ctx, "night"))
	_, err = repo.GetByID(ctx, "night")
	require.True(t, repository.IsNotFound(err))
}

func TestSolveJobRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	helper := NewPostgresTestHelper(ctx, t)
	defer helper.Close(t)

	repo := NewSolveJobRepository(helper.DB())

	job := repository.SolveJob{
		ID:         uuid.New(),
		ScheduleID: "sched-1",
		Status:     repository.SolveJobPending,
		Payload:    []byte(`{}`),
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, job))

	pending, err := repo.GetPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	job.Status = repository.SolveJobSucceeded
	job.ResultSummary = "optimal"
	require.NoError(t, repo.Update(ctx, job))

	fetched, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, repository.SolveJobSucceeded, fetched.Status)
	require.Equal(t, "optimal", fetched.ResultSummary)
}
