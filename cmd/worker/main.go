package main

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/schedcu/solver/internal/appconfig"
	"github.com/schedcu/solver/internal/job"
	"github.com/schedcu/solver/internal/logger"
	"github.com/schedcu/solver/internal/repository/postgres"
)

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New("")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := postgres.New(cfg.Database.DSN())
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.Migrate(ctx, db.DB); err != nil {
		cancel()
		zlog.Fatalw("failed to migrate database", "error", err)
	}
	cancel()

	solveJobs := postgres.NewSolveJobRepository(db.DB)
	schedules := postgres.NewScheduleRepository(db.DB)

	handlers := job.NewJobHandlers(solveJobs, schedules, zlog)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{Concurrency: cfg.Solver.DefaultNumWorkers},
	)

	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	zlog.Infow("starting solve worker", "redis_addr", cfg.RedisAddr)
	if err := srv.Run(mux); err != nil {
		zlog.Fatalw("worker stopped", "error", err)
	}
}
