package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schedcu/solver/internal/api"
	"github.com/schedcu/solver/internal/appconfig"
	"github.com/schedcu/solver/internal/job"
	"github.com/schedcu/solver/internal/logger"
	"github.com/schedcu/solver/internal/metrics"
	"github.com/schedcu/solver/internal/repository/postgres"
	"github.com/schedcu/solver/internal/service"
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

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.Migrate(migrateCtx, db.DB); err != nil {
		cancelMigrate()
		zlog.Fatalw("failed to migrate database", "error", err)
	}
	cancelMigrate()

	scheduler, err := job.NewJobScheduler(cfg.RedisAddr)
	if err != nil {
		zlog.Fatalw("failed to start job scheduler", "error", err)
	}
	defer scheduler.Close()

	workers := postgres.NewWorkerRepository(db.DB)
	shiftTypes := postgres.NewShiftTypeRepository(db.DB)
	availabilities := postgres.NewAvailabilityRepository(db.DB)
	requests := postgres.NewWorkerRequestRepository(db.DB)
	solveJobs := postgres.NewSolveJobRepository(db.DB)

	metricsRegistry := metrics.NewMetricsRegistry()

	solveSvc := service.NewDefaultSolveService(workers, shiftTypes, availabilities, requests, solveJobs, scheduler, metricsRegistry)

	router := api.NewRouter(solveSvc, metricsRegistry)

	go func() {
		zlog.Infow("starting server", "addr", cfg.ServerAddr)
		if err := router.Start(cfg.ServerAddr); err != nil && err != http.ErrServerClosed {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		zlog.Fatalw("server shutdown error", "error", err)
	}
}
