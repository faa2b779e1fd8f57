package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateWithGoalContribution creates a transaction and, when it carries a
// goal ID, credits the goal's balance with the base amount in the same
// database transaction. The goal must exist; otherwise nothing is applied.
func (r *transactionRepository) CreateWithGoalContribution(transaction *models.Transaction) error {
	if !transaction.ContributesToGoal() {
		return r.Create(transaction)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return createAndCredit(tx, transaction)
	})
}

// CreateWithSeries registers a recurring series together with its first
// occurrence in one database transaction. A failed occurrence insert
// rolls the series back, so no series can outlive a create the caller
// was told failed.
func (r *transactionRepository) CreateWithSeries(transaction *models.Transaction, series *models.RecurringSeries) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(series).Error; err != nil {
			return fmt.Errorf("failed to register recurring series: %w", err)
		}
		return createAndCredit(tx, transaction)
	})
}

// createAndCredit inserts the transaction and, for goal-linked entries,
// credits the goal's balance inside the caller's transaction.
func createAndCredit(tx *gorm.DB, transaction *models.Transaction) error {
	if err := tx.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	if !transaction.ContributesToGoal() {
		return nil
	}

	result := tx.Model(&models.SavingsGoal{}).
		Where("id = ?", *transaction.GoalID).
		Updates(map[string]interface{}{
			"current_base_amount": gorm.Expr("current_base_amount + ?", transaction.BaseAmount),
			"updated_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to credit goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUserID retrieves a user's transactions with pagination
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// ExistsOccurrenceOn reports whether the series already has an occurrence
// dated on the given calendar day. This is the generator's idempotency
// check; the unique (group, date) index backs it under races.
func (r *transactionRepository) ExistsOccurrenceOn(groupID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if err := r.db.Model(&models.Transaction{}).
		Where("recurring_group_id = ? AND date >= ? AND date < ?",
			groupID, dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check occurrence existence: %w", err)
	}
	return count > 0, nil
}

// SumExpensesByCategory aggregates completed expense amounts per category
// for the period, in the base currency. One query feeds both the month
// total and the per-category figures so they always come from the same
// snapshot of transactions.
func (r *transactionRepository) SumExpensesByCategory(userID uuid.UUID, start, end time.Time) ([]models.CategorySpend, error) {
	var spends []models.CategorySpend

	query := `
		SELECT
			category,
			SUM(base_amount) as total_base_amount,
			COUNT(*) as transaction_count
		FROM transactions
		WHERE user_id = ?
			AND type = ?
			AND date >= ?
			AND date < ?
		GROUP BY category
		ORDER BY total_base_amount DESC
	`

	if err := r.db.Raw(query, userID, models.TransactionTypeExpense, start, end).
		Scan(&spends).Error; err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	return spends, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", transaction.ID).
		Select("amount", "currency", "base_amount", "exchange_rate",
			"category", "description", "date", "type", "updated_at").
		Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by ID. A goal-linked entry has its
// contribution debited back from the goal in the same database
// transaction, mirroring the credit applied on insert.
func (r *transactionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := tx.Where("id = ?", id).First(&transaction).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		if err := tx.Where("id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		if !transaction.ContributesToGoal() {
			return nil
		}
		result := tx.Model(&models.SavingsGoal{}).
			Where("id = ?", *transaction.GoalID).
			Updates(map[string]interface{}{
				"current_base_amount": gorm.Expr("current_base_amount - ?", transaction.BaseAmount),
				"updated_at":          time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to debit goal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		return nil
	})
}
