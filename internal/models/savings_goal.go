package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal accumulates contributions from transactions that carry its
// ID. CurrentBaseAmount is kept in the base currency; deleting a recurring
// series reverses every contribution its occurrences made.
type SavingsGoal struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string          `gorm:"type:varchar(255);not null" json:"name"`
	TargetBaseAmount  decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"target_base_amount"`
	CurrentBaseAmount decimal.Decimal `gorm:"type:decimal(19,4);not null;default:0" json:"current_base_amount"`
	Deadline          *time.Time      `json:"deadline,omitempty"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for SavingsGoal
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return g.Validate()
}

// Validate validates the goal fields
func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if g.Name == "" {
		return errors.New("goal name is required")
	}
	if g.TargetBaseAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("goal target must be positive")
	}
	return nil
}

// ProgressPercent returns how far the goal has progressed, uncapped
func (g *SavingsGoal) ProgressPercent() float64 {
	if g.TargetBaseAmount.IsZero() {
		return 0
	}
	percent, _ := g.CurrentBaseAmount.Div(g.TargetBaseAmount).Mul(decimal.NewFromInt(100)).Float64()
	return percent
}

// TableName returns the table name for SavingsGoal
func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
