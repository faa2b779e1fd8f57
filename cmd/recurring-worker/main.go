package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
)

// The worker runs one generation pass and exits. Scheduling is the
// deployment's concern: a cron entry or Kubernetes CronJob invokes the
// binary once a day, and generation being idempotent per day makes
// extra invocations harmless.
func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting recurring occurrence generation")

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics()
	transactionRepo := repositories.NewTransactionRepository(db)
	seriesRepo := repositories.NewRecurringSeriesRepository(db)
	recurringService := services.NewRecurringService(seriesRepo, transactionRepo, metrics)

	// A termination signal cancels the pass instead of killing it mid-write
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	count, err := recurringService.RunDailyGeneration(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("Generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Generation complete", "occurrences_created", count)
}
