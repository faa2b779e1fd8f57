package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("savings goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new savings goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new savings goal
func (r *goalRepository) Create(goal *models.SavingsGoal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}
	return nil
}

// GetByID retrieves a savings goal by ID
func (r *goalRepository) GetByID(id uuid.UUID) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := r.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}
	return &goal, nil
}

// GetByUserID retrieves a user's savings goals
func (r *goalRepository) GetByUserID(userID uuid.UUID) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get savings goals: %w", err)
	}
	return goals, nil
}

// AdjustBalance moves a goal's current balance by delta (base currency).
// Negative deltas reverse earlier contributions.
func (r *goalRepository) AdjustBalance(goalID uuid.UUID, delta decimal.Decimal) error {
	result := r.db.Model(&models.SavingsGoal{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"current_base_amount": gorm.Expr("current_base_amount + ?", delta),
			"updated_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to adjust goal balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
