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
	ErrSeriesNotFound = errors.New("recurring series not found")
)

// recurringSeriesRepository implements RecurringSeriesRepositoryInterface
type recurringSeriesRepository struct {
	db *gorm.DB
}

// NewRecurringSeriesRepository creates a new recurring series repository
func NewRecurringSeriesRepository(db *gorm.DB) RecurringSeriesRepositoryInterface {
	return &recurringSeriesRepository{
		db: db,
	}
}

// Create creates a new recurring series
func (r *recurringSeriesRepository) Create(series *models.RecurringSeries) error {
	if err := r.db.Create(series).Error; err != nil {
		return fmt.Errorf("failed to create recurring series: %w", err)
	}
	return nil
}

// GetByGroupID retrieves a series by its group ID
func (r *recurringSeriesRepository) GetByGroupID(groupID uuid.UUID) (*models.RecurringSeries, error) {
	var series models.RecurringSeries
	if err := r.db.Where("group_id = ?", groupID).First(&series).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, fmt.Errorf("failed to get recurring series: %w", err)
	}
	return &series, nil
}

// GetByUserID retrieves a user's series with their occurrence counts
func (r *recurringSeriesRepository) GetByUserID(userID uuid.UUID) ([]models.RecurringSeriesInfo, error) {
	var series []models.RecurringSeries
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&series).Error; err != nil {
		return nil, fmt.Errorf("failed to get recurring series for user: %w", err)
	}

	infos := make([]models.RecurringSeriesInfo, 0, len(series))
	for i := range series {
		var count int64
		if err := r.db.Model(&models.Transaction{}).
			Where("recurring_group_id = ?", series[i].GroupID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count occurrences: %w", err)
		}
		infos = append(infos, models.RecurringSeriesInfo{
			RecurringSeries: series[i],
			OccurrenceCount: count,
		})
	}
	return infos, nil
}

// GetActiveDueBetween retrieves active series whose recurring day falls in
// [minDay, maxDay]. On the last day of a month the caller widens the range
// up to 31 so day-29/30/31 series fire in shorter months.
func (r *recurringSeriesRepository) GetActiveDueBetween(minDay, maxDay int) ([]models.RecurringSeries, error) {
	var series []models.RecurringSeries
	if err := r.db.Where("status = ? AND recurring_day >= ? AND recurring_day <= ?",
		models.RecurringStatusActive, minDay, maxDay).
		Order("created_at ASC").
		Find(&series).Error; err != nil {
		return nil, fmt.Errorf("failed to get due recurring series: %w", err)
	}
	return series, nil
}

// UpdateStatus updates the series status
func (r *recurringSeriesRepository) UpdateStatus(groupID uuid.UUID, status string) error {
	result := r.db.Model(&models.RecurringSeries{}).
		Where("group_id = ?", groupID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update series status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSeriesNotFound
	}
	return nil
}

// DeleteCascade removes the series, every transaction carrying its group
// ID, and reverses each deleted transaction's goal contribution, all in
// one database transaction. Either everything is applied or nothing is:
// a half-deleted series with an unadjusted goal balance must never be
// observable. Returns the number of transactions deleted and the total
// base amount reversed from goals.
func (r *recurringSeriesRepository) DeleteCascade(groupID uuid.UUID) (int64, decimal.Decimal, error) {
	var deleted int64
	reversed := decimal.Zero

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var occurrences []models.Transaction
		if err := tx.Where("recurring_group_id = ?", groupID).
			Find(&occurrences).Error; err != nil {
			return fmt.Errorf("failed to load series occurrences: %w", err)
		}

		// Reverse goal contributions before deleting so a missing goal
		// aborts the whole cascade.
		byGoal := make(map[uuid.UUID]decimal.Decimal)
		for i := range occurrences {
			if occurrences[i].ContributesToGoal() {
				goalID := *occurrences[i].GoalID
				byGoal[goalID] = byGoal[goalID].Add(occurrences[i].BaseAmount)
			}
		}

		for goalID, total := range byGoal {
			result := tx.Model(&models.SavingsGoal{}).
				Where("id = ?", goalID).
				Updates(map[string]interface{}{
					"current_base_amount": gorm.Expr("current_base_amount - ?", total),
					"updated_at":          time.Now().UTC(),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to reverse goal contribution: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrGoalNotFound
			}
			reversed = reversed.Add(total)
		}

		result := tx.Where("recurring_group_id = ?", groupID).
			Delete(&models.Transaction{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete series transactions: %w", result.Error)
		}
		deleted = result.RowsAffected

		if err := tx.Where("group_id = ?", groupID).
			Delete(&models.RecurringSeries{}).Error; err != nil {
			return fmt.Errorf("failed to delete recurring series: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, decimal.Zero, err
	}

	return deleted, reversed, nil
}
