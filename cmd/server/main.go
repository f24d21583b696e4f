package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/moreshwar/stocky/internal/config"
	"github.com/moreshwar/stocky/internal/database"
	"github.com/moreshwar/stocky/internal/modules/evaluation"
	"github.com/moreshwar/stocky/internal/modules/portfolio"
	"github.com/moreshwar/stocky/internal/modules/snapshots"
	"github.com/moreshwar/stocky/internal/scheduler"
	"github.com/moreshwar/stocky/internal/server"
	"github.com/moreshwar/stocky/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Stocky")

	// Initialize snapshots database
	db, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "snapshots.db"),
		Name: "snapshots",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	snapshotRepo, err := snapshots.NewRepository(db.Conn(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize snapshot repository")
	}

	// Core services
	evaluator := evaluation.New(log)
	aggregator := portfolio.NewAggregator(log)
	inputs := evaluation.NewInputStore()

	// Scheduler and the periodic re-evaluation job
	sched := scheduler.New(log)
	rescoreJob := scheduler.NewRescoreJob(inputs, evaluator, aggregator, snapshotRepo, log)
	if err := sched.AddJob(cfg.RescoreSchedule, rescoreJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register rescore job")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP handlers
	evaluationHandler := evaluation.NewHandler(evaluator, aggregator, snapshotRepo, inputs, log)
	portfolioHandler := portfolio.NewHandler(aggregator, log)
	snapshotsHandler := snapshots.NewHandler(snapshotRepo, log)

	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		DevMode: cfg.DevMode,

		EvaluationHandler: evaluationHandler,
		PortfolioHandler:  portfolioHandler,
		SnapshotsHandler:  snapshotsHandler,

		Scheduler:  sched,
		RescoreJob: rescoreJob,
		DataDir:    cfg.DataDir,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
