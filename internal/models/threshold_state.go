package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ThresholdScopeTotal is the scope key for the month-level percentage;
// category scopes use the category key itself.
const ThresholdScopeTotal = "total"

// ThresholdState remembers the last percent-used value the notifier saw
// for one scope of one user's month. Warnings are edge-triggered: a
// boundary fires only when the fresh percentage crosses it upward relative
// to LastPercent, so re-evaluating an already-crossed boundary stays
// silent, while dropping below and rising again reports anew.
type ThresholdState struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_threshold_states_scope" json:"user_id"`
	Month       int       `gorm:"not null;uniqueIndex:idx_threshold_states_scope" json:"month"`
	Year        int       `gorm:"not null;uniqueIndex:idx_threshold_states_scope" json:"year"`
	Scope       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_threshold_states_scope" json:"scope"`
	LastPercent float64   `gorm:"not null;default:0" json:"last_percent"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for ThresholdState
func (s *ThresholdState) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for ThresholdState
func (s *ThresholdState) TableName() string {
	return "threshold_states"
}
