package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	custommw "fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	budgetRepo := repositories.NewBudgetRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	seriesRepo := repositories.NewRecurringSeriesRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	thresholdRepo := repositories.NewThresholdStateRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	currency := services.NewCurrencyNormalizer()
	breakdown := services.NewCategoryBreakdownCalculator(currency)
	notificationService := services.NewNotificationService(notificationRepo)
	notifier := services.NewThresholdNotifier(thresholdRepo, notificationService, cfg.Budget.WarnThresholds, metrics)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo, currency, breakdown, notifier, metrics)
	transactionService := services.NewTransactionService(transactionRepo, goalRepo, currency, metrics)
	recurringService := services.NewRecurringService(seriesRepo, transactionRepo, metrics)

	// Handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiter())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	// Unauthenticated surface
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Authenticated API
	api := e.Group("/api/v1", custommw.RequireAuth(cfg.JWT.Secret, cfg.JWT.Issuer))

	api.GET("/budgets/summary", budgetHandler.GetBudgetSummary)
	api.PUT("/budgets", budgetHandler.UpsertBudget)
	api.DELETE("/budgets", budgetHandler.DeleteBudget)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/recurring", recurringHandler.ListSeries)
	api.POST("/recurring/:groupId/stop", recurringHandler.StopSeries)
	api.DELETE("/recurring/:groupId", recurringHandler.DeleteSeries)

	api.GET("/notifications", notificationHandler.ListNotifications)
	api.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	api.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting API server", "addr", addr, "env", cfg.Server.Environment)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}
