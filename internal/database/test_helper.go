package database

import (
	"fmt"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestBudget stores a VND budget with one allocation per given
// category, each budgeted at amount
func CreateTestBudget(t *testing.T, db *DB, userID uuid.UUID, month, year int, total decimal.Decimal, categories map[string]decimal.Decimal) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:           userID,
		Month:            month,
		Year:             year,
		OriginalCurrency: models.BaseCurrency,
		OriginalAmount:   total,
		TotalBudget:      total,
		ExchangeRate:     decimal.NewFromInt(1),
	}
	for category, amount := range categories {
		budget.Categories = append(budget.Categories, models.CategoryAllocation{
			Category:               category,
			BudgetedAmount:         amount,
			OriginalBudgetedAmount: amount,
		})
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

// CreateTestExpense stores a base-currency expense on the given date
func CreateTestExpense(t *testing.T, db *DB, userID uuid.UUID, category string, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:       userID,
		Type:         models.TransactionTypeExpense,
		Amount:       amount,
		Currency:     models.BaseCurrency,
		BaseAmount:   amount,
		ExchangeRate: decimal.NewFromInt(1),
		Category:     category,
		Description:  gofakeit.Sentence(4),
		Date:         date,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return transaction
}

// CreateTestSeries stores an active recurring series due on the given day
func CreateTestSeries(t *testing.T, db *DB, userID uuid.UUID, category string, amount decimal.Decimal, day int) *models.RecurringSeries {
	t.Helper()

	series := &models.RecurringSeries{
		GroupID:      uuid.New(),
		UserID:       userID,
		Status:       models.RecurringStatusActive,
		Type:         models.TransactionTypeExpense,
		Amount:       amount,
		Currency:     models.BaseCurrency,
		BaseAmount:   amount,
		ExchangeRate: decimal.NewFromInt(1),
		Category:     category,
		Description:  gofakeit.Sentence(4),
		RecurringDay: day,
	}

	if err := db.Create(series).Error; err != nil {
		t.Fatalf("failed to create test series: %v", err)
	}

	return series
}

// CreateTestGoal stores a savings goal with the given starting balance
func CreateTestGoal(t *testing.T, db *DB, userID uuid.UUID, name string, current decimal.Decimal) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		UserID:            userID,
		Name:              name,
		TargetBaseAmount:  decimal.NewFromInt(100_000_000),
		CurrentBaseAmount: current,
	}

	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"threshold_states",
		"notifications",
		"transactions",
		"recurring_series",
		"savings_goals",
		"category_allocations",
		"budgets",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
