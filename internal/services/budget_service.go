package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("amount must be a positive decimal")
	ErrInvalidExchangeRate = errors.New("exchange rate must be a positive decimal")
)

// budgetService implements BudgetServiceInterface
type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	txRepo     repositories.TransactionRepositoryInterface
	currency   CurrencyNormalizerInterface
	breakdown  CategoryBreakdownInterface
	notifier   ThresholdNotifierInterface
	metrics    MetricsRecorderInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	txRepo repositories.TransactionRepositoryInterface,
	currency CurrencyNormalizerInterface,
	breakdown CategoryBreakdownInterface,
	notifier ThresholdNotifierInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		txRepo:     txRepo,
		currency:   currency,
		breakdown:  breakdown,
		notifier:   notifier,
		metrics:    metrics,
	}
}

// GetBudgetSummary aggregates the month's expenses against the budget.
// The whole summary derives from one grouped query so the month total and
// the per-category figures always describe the same set of transactions.
// A month without a budget yields the empty summary, not an error.
func (s *budgetService) GetBudgetSummary(userID uuid.UUID, month, year int) (*models.BudgetSummary, error) {
	start := time.Now()

	budget, err := s.budgetRepo.GetByUserPeriod(userID, month, year)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return models.EmptyBudgetSummary(month, year), nil
		}
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	spends, err := s.txRepo.SumExpensesByCategory(userID, budget.PeriodStart(), budget.PeriodEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}

	summary := s.aggregate(budget, spends)

	if s.notifier != nil {
		if _, err := s.notifier.Evaluate(userID, summary); err != nil {
			// Warning emission must not break the read path
			slog.Error("threshold evaluation failed",
				"user_id", userID,
				"month", month,
				"year", year,
				"error", err)
		}
	}

	s.metrics.IncrementCounter("budget_aggregations", map[string]string{"result": "ok"})
	s.metrics.RecordProcessingTime("budget_aggregation", time.Since(start))

	slog.Info("budget summary aggregated",
		"user_id", userID,
		"month", month,
		"year", year,
		"total_spent", summary.TotalSpent.String(),
		"total_percent_used", summary.TotalPercentUsed)

	return summary, nil
}

// aggregate is the pure projection from budget plus grouped spends to a
// summary. Calling it twice with identical inputs yields identical output.
func (s *budgetService) aggregate(budget *models.Budget, spends []models.CategorySpend) *models.BudgetSummary {
	totalSpent := decimal.Zero
	for i := range spends {
		totalSpent = totalSpent.Add(spends[i].TotalBaseAmount)
	}

	// The month percentage is intentionally not clamped at 100: values
	// above it are how over-budget months surface. Progress bars clamp
	// for rendering, not here.
	totalPercent := 0.0
	if budget.TotalBudget.IsPositive() {
		totalPercent, _ = totalSpent.Div(budget.TotalBudget).
			Mul(decimal.NewFromInt(100)).Float64()
	} else if totalSpent.IsPositive() {
		totalPercent = unallocatedOverspendPercent
	}

	displayCurrency := budget.OriginalCurrency
	if displayCurrency == "" {
		displayCurrency = models.BaseCurrency
	}

	return &models.BudgetSummary{
		Month:            budget.Month,
		Year:             budget.Year,
		HasBudget:        true,
		DisplayCurrency:  displayCurrency,
		TotalBudget:      budget.TotalBudget,
		TotalSpent:       totalSpent,
		TotalPercentUsed: totalPercent,
		CategoryStats:    s.breakdown.Breakdown(budget, spends),
	}
}

// CreateOrReplaceBudget sets the user's budget for a month. The exchange
// rate is captured now and fixed for the budget's lifetime; replacing the
// budget later snapshots a fresh rate.
func (s *budgetService) CreateOrReplaceBudget(userID uuid.UUID, req *dto.UpsertBudgetRequest) (*models.Budget, error) {
	if !models.IsValidCurrency(req.Currency) {
		return nil, models.ErrInvalidCurrency
	}

	amount, err := parsePositiveDecimal(req.Amount)
	if err != nil {
		return nil, err
	}

	rate, err := resolveRate(req.Currency, req.ExchangeRate)
	if err != nil {
		return nil, err
	}

	totalBudget, err := s.currency.ToBase(amount, req.Currency, rate)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:           userID,
		Month:            req.Month,
		Year:             req.Year,
		OriginalCurrency: req.Currency,
		OriginalAmount:   amount,
		TotalBudget:      totalBudget,
		ExchangeRate:     rate,
	}

	for _, alloc := range req.Categories {
		original, err := parsePositiveDecimal(alloc.Amount)
		if err != nil {
			return nil, err
		}
		budgeted, err := s.currency.ToBase(original, req.Currency, rate)
		if err != nil {
			return nil, err
		}
		budget.Categories = append(budget.Categories, models.CategoryAllocation{
			Category:               alloc.Category,
			BudgetedAmount:         budgeted,
			OriginalBudgetedAmount: original,
		})
	}

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		return nil, fmt.Errorf("failed to store budget: %w", err)
	}

	slog.Info("budget created or replaced",
		"user_id", userID,
		"month", req.Month,
		"year", req.Year,
		"currency", req.Currency,
		"total_budget", totalBudget.String(),
		"categories", len(budget.Categories))

	return budget, nil
}

// DeleteBudget wipes the month's allocation. The month's transactions
// are untouched.
func (s *budgetService) DeleteBudget(userID uuid.UUID, month, year int) error {
	if err := s.budgetRepo.DeleteByUserPeriod(userID, month, year); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return repositories.ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	slog.Info("budget deleted",
		"user_id", userID,
		"month", month,
		"year", year)
	return nil
}

// parsePositiveDecimal parses a request amount string
func parsePositiveDecimal(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// resolveRate determines the creation-time exchange rate for a currency.
// The base currency is always 1; other currencies require the caller to
// supply the snapshot rate.
func resolveRate(currency, raw string) (decimal.Decimal, error) {
	if currency == models.BaseCurrency {
		return decimal.NewFromInt(1), nil
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidExchangeRate
	}
	return rate, nil
}
