// Package main is the entry point for the MoneyWise personal finance
// education server. It wires the paper-trading portfolio, market catalog,
// compound-growth projector, quiz generator, and guidance flowchart behind
// a single REST API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moneywise/moneywise/internal/config"
	"github.com/moneywise/moneywise/internal/database"
	"github.com/moneywise/moneywise/internal/modules/concepts"
	"github.com/moneywise/moneywise/internal/modules/guidance"
	"github.com/moneywise/moneywise/internal/modules/market"
	"github.com/moneywise/moneywise/internal/modules/portfolio"
	"github.com/moneywise/moneywise/internal/modules/quiz"
	"github.com/moneywise/moneywise/internal/modules/snapshots"
	"github.com/moneywise/moneywise/internal/scheduler"
	"github.com/moneywise/moneywise/internal/server"
	"github.com/moneywise/moneywise/pkg/logger"
)

// quoteTickInterval is how often the websocket stream pushes price ticks.
const quoteTickInterval = 2 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.Port).
		Bool("dev_mode", cfg.DevMode).
		Msg("Starting MoneyWise")

	db, err := database.New(database.Config{
		Path: cfg.DatabasePath(),
		Name: "moneywise",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	if err := db.InitSchema(database.Schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database schema")
	}

	// Repositories and services
	catalog := market.NewCatalog()
	streamer := market.NewQuoteStreamer(catalog, quoteTickInterval, log)

	portfolioRepo := portfolio.NewRepository(db.Conn(), log)
	ledger := portfolio.NewLedger(portfolioRepo, catalog, cfg.StartingCash, log)

	conceptsRepo := concepts.NewRepository(db.Conn(), log)
	if err := conceptsRepo.Seed(); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed concept catalog")
	}

	quizGenerator := quiz.NewGenerator(nil)
	quizSessions := quiz.NewSessionStore()

	guidanceEngine, err := guidance.NewEngine(log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build guidance engine")
	}

	snapshotsRepo := snapshots.NewRepository(db.Conn(), log)
	recorder := snapshots.NewRecorder(snapshotsRepo, portfolioRepo, catalog, log)

	// Background jobs
	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.SnapshotSchedule, snapshots.NewJob(recorder)); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.SnapshotSchedule).Msg("Failed to register snapshot job")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:      log,
		Cfg:      cfg,
		DB:       db,
		Catalog:  catalog,
		Streamer: streamer,
		Ledger:   ledger,
		Concepts: conceptsRepo,
		Quiz:     quizGenerator,
		Sessions: quizSessions,
		Guidance: guidanceEngine,
		Recorder: recorder,
		Port:     cfg.Port,
		DevMode:  cfg.DevMode,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	// Graceful shutdown: stop taking requests, finish jobs, close the db
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	sched.Stop()

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Database close failed")
	}

	log.Info().Msg("Shutdown complete")
}
