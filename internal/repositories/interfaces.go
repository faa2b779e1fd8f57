package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetByUserPeriod(userID uuid.UUID, month, year int) (*models.Budget, error)
	DeleteByUserPeriod(userID uuid.UUID, month, year int) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateWithGoalContribution(transaction *models.Transaction) error
	CreateWithSeries(transaction *models.Transaction, series *models.RecurringSeries) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	ExistsOccurrenceOn(groupID uuid.UUID, date time.Time) (bool, error)
	SumExpensesByCategory(userID uuid.UUID, start, end time.Time) ([]models.CategorySpend, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
}

// RecurringSeriesRepositoryInterface defines the contract for recurring series operations
type RecurringSeriesRepositoryInterface interface {
	Create(series *models.RecurringSeries) error
	GetByGroupID(groupID uuid.UUID) (*models.RecurringSeries, error)
	GetByUserID(userID uuid.UUID) ([]models.RecurringSeriesInfo, error)
	GetActiveDueBetween(minDay, maxDay int) ([]models.RecurringSeries, error)
	UpdateStatus(groupID uuid.UUID, status string) error
	DeleteCascade(groupID uuid.UUID) (deleted int64, reversed decimal.Decimal, err error)
}

// GoalRepositoryInterface defines the contract for savings goal operations
type GoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	GetByID(id uuid.UUID) (*models.SavingsGoal, error)
	GetByUserID(userID uuid.UUID) ([]models.SavingsGoal, error)
	AdjustBalance(goalID uuid.UUID, delta decimal.Decimal) error
}

// NotificationRepositoryInterface defines the contract for notification operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByUserID(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(id, userID uuid.UUID) error
	Delete(id, userID uuid.UUID) error
}

// ThresholdStateRepositoryInterface defines the contract for threshold state operations
type ThresholdStateRepositoryInterface interface {
	GetForPeriod(userID uuid.UUID, month, year int) (map[string]float64, error)
	UpsertPercent(userID uuid.UUID, month, year int, scope string, percent float64) error
}
