package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidRecurringDay    = errors.New("recurring day must be between 1 and 31")
	ErrMissingRecurringGroup  = errors.New("recurring transaction requires a group ID")
)

// Transaction is a single income or expense entry. Amount and Currency are
// the figures as entered; BaseAmount is the base-currency equivalent fixed
// at the exchange rate captured on creation and never recomputed.
//
// Occurrences generated from a recurring series share a RecurringGroupID.
// The unique index on (recurring_group_id, date) is the idempotency guard
// for the daily generator: racing runners can both attempt the insert, the
// constraint lets at most one win.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type             string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount           decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	Currency         string          `gorm:"type:varchar(3);not null" json:"currency"`
	BaseAmount       decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"base_amount"`
	ExchangeRate     decimal.Decimal `gorm:"type:decimal(19,8);not null" json:"exchange_rate"`
	Category         string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	Date             time.Time       `gorm:"type:date;not null;index;uniqueIndex:idx_transactions_group_date" json:"date"`
	IsRecurring      bool            `gorm:"not null;default:false" json:"is_recurring"`
	RecurringDay     *int            `json:"recurring_day,omitempty"`
	RecurringGroupID *uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_transactions_group_date" json:"recurring_group_id,omitempty"`
	GoalID           *uuid.UUID      `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if err := t.Money().Validate(); err != nil {
		return err
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}
	if t.IsRecurring {
		if t.RecurringGroupID == nil || *t.RecurringGroupID == uuid.Nil {
			return ErrMissingRecurringGroup
		}
		if t.RecurringDay == nil || *t.RecurringDay < 1 || *t.RecurringDay > 31 {
			return ErrInvalidRecurringDay
		}
	}
	return nil
}

// Money returns the transaction's monetary fields as a MoneyAmount
func (t *Transaction) Money() MoneyAmount {
	return MoneyAmount{
		Value:        t.Amount,
		Currency:     t.Currency,
		BaseValue:    t.BaseAmount,
		ExchangeRate: t.ExchangeRate,
	}
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// ContributesToGoal returns true if the transaction feeds a savings goal
func (t *Transaction) ContributesToGoal() bool {
	return t.GoalID != nil && *t.GoalID != uuid.Nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
