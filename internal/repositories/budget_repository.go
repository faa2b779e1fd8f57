package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget for (user, month, year) or replaces the
// existing one, allocations included. The replacement happens in one
// database transaction so readers never observe a month with the old
// total and the new allocations.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Budget
		err := tx.Where("user_id = ? AND month = ? AND year = ?",
			budget.UserID, budget.Month, budget.Year).
			First(&existing).Error

		if err == nil {
			if err := tx.Where("budget_id = ?", existing.ID).
				Delete(&models.CategoryAllocation{}).Error; err != nil {
				return fmt.Errorf("failed to clear previous allocations: %w", err)
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to replace previous budget: %w", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up existing budget: %w", err)
		}

		if err := tx.Create(budget).Error; err != nil {
			return fmt.Errorf("failed to create budget: %w", err)
		}
		return nil
	})
}

// GetByUserPeriod retrieves a user's budget for a month, with allocations
func (r *budgetRepository) GetByUserPeriod(userID uuid.UUID, month, year int) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Preload("Categories").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// DeleteByUserPeriod removes the month's budget and its allocations.
// Transactions recorded in the month are untouched.
func (r *budgetRepository) DeleteByUserPeriod(userID uuid.UUID, month, year int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
			First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBudgetNotFound
			}
			return fmt.Errorf("failed to look up budget: %w", err)
		}

		if err := tx.Where("budget_id = ?", budget.ID).
			Delete(&models.CategoryAllocation{}).Error; err != nil {
			return fmt.Errorf("failed to delete allocations: %w", err)
		}
		if err := tx.Delete(&budget).Error; err != nil {
			return fmt.Errorf("failed to delete budget: %w", err)
		}
		return nil
	})
}
