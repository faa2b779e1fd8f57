package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrInvalidYear       = errors.New("year is out of range")
	ErrInvalidBudget     = errors.New("budget amount must be positive")
	ErrDuplicateCategory = errors.New("duplicate category allocation")
	ErrInvalidCategory   = errors.New("unknown category key")
)

// Budget is a user's monthly allocation. At most one budget exists per
// (user, month, year); creating again for the same month replaces it.
// TotalBudget is the base-currency equivalent of OriginalAmount, fixed at
// the exchange rate captured when the budget was created or last replaced.
type Budget struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_period" json:"user_id"`
	Month            int                  `gorm:"not null;uniqueIndex:idx_budgets_user_period" json:"month"`
	Year             int                  `gorm:"not null;uniqueIndex:idx_budgets_user_period" json:"year"`
	OriginalCurrency string               `gorm:"type:varchar(3);not null" json:"original_currency"`
	OriginalAmount   decimal.Decimal      `gorm:"type:decimal(19,4);not null" json:"original_amount"`
	TotalBudget      decimal.Decimal      `gorm:"type:decimal(19,4);not null" json:"total_budget"`
	ExchangeRate     decimal.Decimal      `gorm:"type:decimal(19,8);not null" json:"exchange_rate"`
	Categories       []CategoryAllocation `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"categories"`
	CreatedAt        time.Time            `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time            `gorm:"not null" json:"updated_at"`
}

// CategoryAllocation is one category's share of a monthly budget.
// BudgetedAmount is in the base currency, OriginalBudgetedAmount in the
// budget's original currency. Categories are unique within a budget; the
// allocations are not required to sum to the budget total.
type CategoryAllocation struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BudgetID               uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_allocations_budget_category" json:"budget_id"`
	Category               string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_allocations_budget_category" json:"category"`
	BudgetedAmount         decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"budgeted_amount"`
	OriginalBudgetedAmount decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"original_budgeted_amount"`
	CreatedAt              time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}
	if b.Year < 1970 || b.Year > 9999 {
		return ErrInvalidYear
	}
	if !IsValidCurrency(b.OriginalCurrency) {
		return ErrInvalidCurrency
	}
	if b.OriginalAmount.LessThanOrEqual(decimal.Zero) || b.TotalBudget.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudget
	}
	if b.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveRate
	}

	seen := make(map[string]bool, len(b.Categories))
	for i := range b.Categories {
		if err := b.Categories[i].Validate(); err != nil {
			return err
		}
		if seen[b.Categories[i].Category] {
			return ErrDuplicateCategory
		}
		seen[b.Categories[i].Category] = true
	}
	return nil
}

// AllocationFor returns the allocation for a category key, if any
func (b *Budget) AllocationFor(category string) (*CategoryAllocation, bool) {
	for i := range b.Categories {
		if b.Categories[i].Category == category {
			return &b.Categories[i], true
		}
	}
	return nil, false
}

// PeriodStart returns the first instant of the budget's month in UTC
func (b *Budget) PeriodStart() time.Time {
	return time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the first instant of the following month in UTC
func (b *Budget) PeriodEnd() time.Time {
	return b.PeriodStart().AddDate(0, 1, 0)
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// BeforeCreate hook for CategoryAllocation
func (a *CategoryAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return a.Validate()
}

// Validate validates the allocation fields
func (a *CategoryAllocation) Validate() error {
	if !IsValidCategory(a.Category) {
		return ErrInvalidCategory
	}
	if a.BudgetedAmount.IsNegative() || a.OriginalBudgetedAmount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// TableName returns the table name for CategoryAllocation
func (a *CategoryAllocation) TableName() string {
	return "category_allocations"
}
