package dto

// CategoryAllocationRequest is one category's share in a budget payload.
// Amounts travel as strings and are parsed into decimals at the handler
// boundary, keeping float artifacts out of monetary values.
type CategoryAllocationRequest struct {
	Category string `json:"category" validate:"required,budget_category"`
	Amount   string `json:"amount" validate:"required,decimal_amount"`
}

// UpsertBudgetRequest creates or replaces a user's budget for one month
type UpsertBudgetRequest struct {
	Month        int                         `json:"month" validate:"required,min=1,max=12"`
	Year         int                         `json:"year" validate:"required,min=1970,max=9999"`
	Currency     string                      `json:"currency" validate:"required,currency_code"`
	Amount       string                      `json:"amount" validate:"required,decimal_amount"`
	ExchangeRate string                      `json:"exchange_rate,omitempty" validate:"exchange_rate"`
	Categories   []CategoryAllocationRequest `json:"categories" validate:"dive"`
}

// BudgetSummaryQuery selects the month to aggregate
type BudgetSummaryQuery struct {
	Month int `query:"month" validate:"required,min=1,max=12"`
	Year  int `query:"year" validate:"required,min=1970,max=9999"`
}
