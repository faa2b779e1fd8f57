package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBudget() Budget {
	return Budget{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Month:            3,
		Year:             2025,
		OriginalCurrency: BaseCurrency,
		OriginalAmount:   decimal.NewFromInt(10_000_000),
		TotalBudget:      decimal.NewFromInt(10_000_000),
		ExchangeRate:     decimal.NewFromInt(1),
		Categories: []CategoryAllocation{
			{
				Category:               CategoryFood,
				BudgetedAmount:         decimal.NewFromInt(4_000_000),
				OriginalBudgetedAmount: decimal.NewFromInt(4_000_000),
			},
		},
	}
}

func TestBudget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Budget)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid budget",
			mutate: func(b *Budget) {},
		},
		{
			name:    "missing user",
			mutate:  func(b *Budget) { b.UserID = uuid.Nil },
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name:    "month out of range",
			mutate:  func(b *Budget) { b.Month = 13 },
			wantErr: true,
			errMsg:  ErrInvalidMonth.Error(),
		},
		{
			name:    "year out of range",
			mutate:  func(b *Budget) { b.Year = 1969 },
			wantErr: true,
			errMsg:  ErrInvalidYear.Error(),
		},
		{
			name:    "unknown currency",
			mutate:  func(b *Budget) { b.OriginalCurrency = "XYZ" },
			wantErr: true,
			errMsg:  ErrInvalidCurrency.Error(),
		},
		{
			name:    "non-positive total",
			mutate:  func(b *Budget) { b.TotalBudget = decimal.Zero },
			wantErr: true,
			errMsg:  ErrInvalidBudget.Error(),
		},
		{
			name:    "non-positive rate",
			mutate:  func(b *Budget) { b.ExchangeRate = decimal.Zero },
			wantErr: true,
			errMsg:  ErrNonPositiveRate.Error(),
		},
		{
			name: "duplicate category",
			mutate: func(b *Budget) {
				b.Categories = append(b.Categories, CategoryAllocation{
					Category:               CategoryFood,
					BudgetedAmount:         decimal.NewFromInt(1_000_000),
					OriginalBudgetedAmount: decimal.NewFromInt(1_000_000),
				})
			},
			wantErr: true,
			errMsg:  ErrDuplicateCategory.Error(),
		},
		{
			name: "unknown allocation category",
			mutate: func(b *Budget) {
				b.Categories[0].Category = "gifts"
			},
			wantErr: true,
			errMsg:  ErrInvalidCategory.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := validBudget()
			tt.mutate(&budget)
			err := budget.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudget_Period(t *testing.T) {
	budget := validBudget()
	budget.Month = 12
	budget.Year = 2025

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), budget.PeriodStart())
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), budget.PeriodEnd())
}

func TestBudget_AllocationFor(t *testing.T) {
	budget := validBudget()

	alloc, ok := budget.AllocationFor(CategoryFood)
	require.True(t, ok)
	assert.True(t, alloc.BudgetedAmount.Equal(decimal.NewFromInt(4_000_000)))

	_, ok = budget.AllocationFor(CategoryTravel)
	assert.False(t, ok)
}
