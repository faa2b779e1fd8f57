package services

import (
	"context"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyNormalizerInterface converts amounts between a record's original
// currency and the base currency using rates snapshotted at creation time.
// All methods are pure.
type CurrencyNormalizerInterface interface {
	// ToBase converts an original-currency amount using the captured rate
	ToBase(amount decimal.Decimal, currency string, rate decimal.Decimal) (decimal.Decimal, error)

	// ToDisplay projects a base-currency value back into the original
	// currency using the rate derived from the record's stored totals
	ToDisplay(baseValue, originalTotalBase, originalTotalAmount decimal.Decimal, originalCurrency string) decimal.Decimal

	// DeriveRate computes base units per original unit from two stored
	// totals, falling back to 1 when the original amount is zero
	DeriveRate(totalBase, originalAmount decimal.Decimal) decimal.Decimal

	// RoundForCurrency rounds an amount to the currency's fraction digits
	RoundForCurrency(amount decimal.Decimal, currency string) decimal.Decimal
}

// CategoryBreakdownInterface computes per-category budget figures from a
// budget's allocations and the period's pre-grouped expense sums
type CategoryBreakdownInterface interface {
	Breakdown(budget *models.Budget, spends []models.CategorySpend) []models.CategoryStat
}

// BudgetServiceInterface defines budget-related business operations
type BudgetServiceInterface interface {
	GetBudgetSummary(userID uuid.UUID, month, year int) (*models.BudgetSummary, error)
	CreateOrReplaceBudget(userID uuid.UUID, req *dto.UpsertBudgetRequest) (*models.Budget, error)
	DeleteBudget(userID uuid.UUID, month, year int) error
}

// TransactionServiceInterface defines transaction business operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(userID, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	UpdateTransaction(userID, id uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(userID, id uuid.UUID) error
}

// RecurringServiceInterface owns the recurring series lifecycle
type RecurringServiceInterface interface {
	// RunDailyGeneration creates one occurrence for every active series
	// due on the given day. Safe to invoke repeatedly within a day.
	RunDailyGeneration(ctx context.Context, now time.Time) (int, error)

	// Stop halts future generation for a series, preserving history.
	// Stopping an already-stopped or unknown series is a no-op.
	Stop(userID, groupID uuid.UUID) error

	// DeleteAll removes the series and every occurrence, reversing goal
	// contributions atomically. Deleting an unknown series is a no-op.
	DeleteAll(userID, groupID uuid.UUID) error

	ListSeries(userID uuid.UUID) ([]models.RecurringSeriesInfo, error)
}

// ThresholdNotifierInterface turns aggregation results into warning events
type ThresholdNotifierInterface interface {
	// Evaluate compares the summary against the configured boundaries and
	// emits edge-triggered warnings for upward crossings
	Evaluate(userID uuid.UUID, summary *models.BudgetSummary) ([]models.Notification, error)
}

// NotificationEmitterInterface is the outbound event boundary. The core
// records the event; delivery transport belongs to the collaborator.
type NotificationEmitterInterface interface {
	Emit(notification *models.Notification) error
}

// NotificationServiceInterface defines the user-facing notification
// surface. It embeds the emitter boundary because the default service
// is also where emitted events are persisted.
type NotificationServiceInterface interface {
	NotificationEmitterInterface
	ListNotifications(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(userID, id uuid.UUID) error
	DeleteNotification(userID, id uuid.UUID) error
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
