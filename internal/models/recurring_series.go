package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecurringStatusActive  = "active"
	RecurringStatusStopped = "stopped"
)

var ErrInvalidRecurringStatus = errors.New("invalid recurring series status")

// RecurringSeries is the explicit read/write model for a recurring
// transaction definition, keyed by the group ID its occurrences share.
// It carries the template the daily generator stamps onto each occurrence.
//
// Lifecycle: Active series generate one occurrence per month on
// RecurringDay (clamped to the last day of short months). Stop is a
// one-way transition that halts generation and preserves history.
// There is no stored "deleted" status: deleteAll removes the series row
// together with every member transaction.
type RecurringSeries struct {
	GroupID      uuid.UUID       `gorm:"type:uuid;primary_key" json:"group_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Status       string          `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	Type         string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount       decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	Currency     string          `gorm:"type:varchar(3);not null" json:"currency"`
	BaseAmount   decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"base_amount"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(19,8);not null" json:"exchange_rate"`
	Category     string          `gorm:"type:varchar(50);not null" json:"category"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	RecurringDay int             `gorm:"not null" json:"recurring_day"`
	GoalID       *uuid.UUID      `gorm:"type:uuid" json:"goal_id,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// RecurringSeriesInfo is the series read model exposed to the API,
// combining the stored series with its derived occurrence count.
type RecurringSeriesInfo struct {
	RecurringSeries
	OccurrenceCount int64 `json:"occurrence_count"`
}

// BeforeCreate hook for RecurringSeries
func (s *RecurringSeries) BeforeCreate(tx *gorm.DB) error {
	if s.GroupID == uuid.Nil {
		s.GroupID = uuid.New()
	}
	if s.Status == "" {
		s.Status = RecurringStatusActive
	}
	return s.Validate()
}

// Validate validates the series fields
func (s *RecurringSeries) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidRecurringStatus(s.Status) {
		return ErrInvalidRecurringStatus
	}
	if !IsValidTransactionType(s.Type) {
		return ErrInvalidTransactionType
	}
	if s.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !IsValidCurrency(s.Currency) {
		return ErrInvalidCurrency
	}
	if s.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveRate
	}
	if !IsValidCategory(s.Category) {
		return ErrInvalidCategory
	}
	if s.RecurringDay < 1 || s.RecurringDay > 31 {
		return ErrInvalidRecurringDay
	}
	return nil
}

// IsActive returns true if the generator still produces occurrences
func (s *RecurringSeries) IsActive() bool {
	return s.Status == RecurringStatusActive
}

// EffectiveDay returns the day of month an occurrence fires on for the
// given month, clamping the configured day to the month's last valid day
// so a day-31 series still fires in February.
func (s *RecurringSeries) EffectiveDay(year int, month time.Month) int {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if s.RecurringDay > lastDay {
		return lastDay
	}
	return s.RecurringDay
}

// NewOccurrence builds a transaction from the series template dated on the
// given day, tagged with the series group ID.
func (s *RecurringSeries) NewOccurrence(date time.Time) *Transaction {
	day := s.RecurringDay
	return &Transaction{
		UserID:           s.UserID,
		Type:             s.Type,
		Amount:           s.Amount,
		Currency:         s.Currency,
		BaseAmount:       s.BaseAmount,
		ExchangeRate:     s.ExchangeRate,
		Category:         s.Category,
		Description:      s.Description,
		Date:             date,
		IsRecurring:      true,
		RecurringDay:     &day,
		RecurringGroupID: &s.GroupID,
		GoalID:           s.GoalID,
	}
}

// TableName returns the table name for RecurringSeries
func (s *RecurringSeries) TableName() string {
	return "recurring_series"
}

// IsValidRecurringStatus checks if the series status is valid
func IsValidRecurringStatus(status string) bool {
	switch status {
	case RecurringStatusActive, RecurringStatusStopped:
		return true
	default:
		return false
	}
}
