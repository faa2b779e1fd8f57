package models

import "github.com/shopspring/decimal"

// CategorySpend is one row of the per-category expense aggregation query
// for a period: the summed base-currency amount and occurrence count.
type CategorySpend struct {
	Category         string          `json:"category"`
	TotalBaseAmount  decimal.Decimal `json:"total_base_amount"`
	TransactionCount int64           `json:"transaction_count"`
}

// CategoryStat is the computed per-category budget figure. Display amounts
// are projected into the budget's original currency; base amounts stay in
// the base currency. PercentUsed is never clamped here: values above 100
// are how over-budget categories surface, and the zero-allocation edge
// cases resolve to defined values instead of NaN.
type CategoryStat struct {
	Category         string          `json:"category"`
	BudgetedAmount   decimal.Decimal `json:"budgeted_amount"`
	SpentAmount      decimal.Decimal `json:"spent_amount"`
	DisplayBudget    decimal.Decimal `json:"display_budget"`
	DisplaySpent     decimal.Decimal `json:"display_spent"`
	DisplayRemaining decimal.Decimal `json:"display_remaining"`
	PercentUsed      float64         `json:"percent_used"`
	IsOver           bool            `json:"is_over"`
}

// BudgetSummary is the month-level aggregation result. It is always
// re-derived from the budget and the period's transactions, never cached.
// TotalPercentUsed is not clamped to 100; clamping is a rendering concern.
type BudgetSummary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	HasBudget        bool            `json:"has_budget"`
	DisplayCurrency  string          `json:"display_currency"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TotalPercentUsed float64         `json:"total_percent_used"`
	CategoryStats    []CategoryStat  `json:"category_stats"`
}

// EmptyBudgetSummary is the well-defined summary for a month without a
// budget. "No budget set" is a common state, not an error.
func EmptyBudgetSummary(month, year int) *BudgetSummary {
	return &BudgetSummary{
		Month:           month,
		Year:            year,
		HasBudget:       false,
		DisplayCurrency: BaseCurrency,
		TotalBudget:     decimal.Zero,
		TotalSpent:      decimal.Zero,
		CategoryStats:   []CategoryStat{},
	}
}
