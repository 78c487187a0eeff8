package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a SQL database connection for all PostgreSQL operations
type DB struct {
	*sql.DB
}

// New creates a new PostgreSQL database connection
func New(connString string) (*DB, error) {
	sqldb, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{sqldb}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Health checks database connectivity
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// schema is the full set of tables the solver service persists to. It is
// applied idempotently; there is no migration history table since every
// statement is a CREATE TABLE/INDEX IF NOT EXISTS.
const schema = `
CREATE TABLE IF NOT EXISTS workers (
	id TEXT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	worker_type VARCHAR(100) NOT NULL,
	restricted_shifts TEXT[] DEFAULT '{}',
	preferred_shifts TEXT[] DEFAULT '{}',
	attributes JSONB
);

CREATE TABLE IF NOT EXISTS shift_types (
	id TEXT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	category VARCHAR(100),
	start_time VARCHAR(5),
	end_time VARCHAR(5),
	duration_hours DOUBLE PRECISION NOT NULL,
	is_undesirable BOOLEAN DEFAULT false,
	workers_required INTEGER NOT NULL,
	applicable_days INTEGER[],
	required_attrs JSONB
);

CREATE TABLE IF NOT EXISTS availabilities (
	worker_id TEXT NOT NULL REFERENCES workers(id),
	start_time TIMESTAMP NOT NULL,
	end_time TIMESTAMP NOT NULL,
	kind INTEGER NOT NULL,
	shift_type_id TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS worker_requests (
	worker_id TEXT NOT NULL REFERENCES workers(id),
	shift_type_id TEXT NOT NULL,
	start_time TIMESTAMP NOT NULL,
	end_time TIMESTAMP NOT NULL,
	polarity INTEGER NOT NULL,
	priority INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS schedules (
	schedule_id TEXT PRIMARY KEY,
	start_date TIMESTAMP NOT NULL,
	end_date TIMESTAMP NOT NULL,
	period_type VARCHAR(50) NOT NULL,
	periods JSONB,
	workers JSONB,
	shift_types JSONB
);

CREATE TABLE IF NOT EXISTS solve_jobs (
	id UUID PRIMARY KEY,
	schedule_id TEXT NOT NULL,
	status VARCHAR(50) NOT NULL,
	payload JSONB,
	result_summary TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_availabilities_worker ON availabilities(worker_id);
CREATE INDEX IF NOT EXISTS idx_worker_requests_worker ON worker_requests(worker_id);
CREATE INDEX IF NOT EXISTS idx_solve_jobs_status ON solve_jobs(status);
`

// Migrate applies the solver schema. Safe to call on every process start.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
