package repositories

import (
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// thresholdStateRepository implements ThresholdStateRepositoryInterface
type thresholdStateRepository struct {
	db *gorm.DB
}

// NewThresholdStateRepository creates a new threshold state repository
func NewThresholdStateRepository(db *gorm.DB) ThresholdStateRepositoryInterface {
	return &thresholdStateRepository{
		db: db,
	}
}

// GetForPeriod returns the last recorded percent per scope for a user's
// month. Scopes never evaluated before are simply absent from the map.
func (r *thresholdStateRepository) GetForPeriod(userID uuid.UUID, month, year int) (map[string]float64, error) {
	var states []models.ThresholdState
	if err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Find(&states).Error; err != nil {
		return nil, fmt.Errorf("failed to get threshold states: %w", err)
	}

	result := make(map[string]float64, len(states))
	for i := range states {
		result[states[i].Scope] = states[i].LastPercent
	}
	return result, nil
}

// UpsertPercent records the latest observed percent for a scope
func (r *thresholdStateRepository) UpsertPercent(userID uuid.UUID, month, year int, scope string, percent float64) error {
	state := models.ThresholdState{
		UserID:      userID,
		Month:       month,
		Year:        year,
		Scope:       scope,
		LastPercent: percent,
		UpdatedAt:   time.Now().UTC(),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "month"}, {Name: "year"}, {Name: "scope"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"last_percent", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		return fmt.Errorf("failed to upsert threshold state: %w", err)
	}
	return nil
}
