package dto

// CreateTransactionRequest records a new income or expense entry. When
// IsRecurring is set a recurring series is registered alongside and this
// entry becomes its first occurrence.
type CreateTransactionRequest struct {
	Type         string `json:"type" validate:"required,oneof=income expense"`
	Amount       string `json:"amount" validate:"required,decimal_amount"`
	Currency     string `json:"currency" validate:"required,currency_code"`
	ExchangeRate string `json:"exchange_rate,omitempty" validate:"exchange_rate"`
	Category     string `json:"category" validate:"required,budget_category"`
	Description  string `json:"description,omitempty" validate:"max=500"`
	Date         string `json:"date,omitempty" validate:"iso_date"`
	IsRecurring  bool   `json:"is_recurring"`
	RecurringDay int    `json:"recurring_day,omitempty" validate:"omitempty,min=1,max=31"`
	GoalID       string `json:"goal_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateTransactionRequest edits the descriptive fields of an entry.
// Monetary fields are not editable: the base-currency conversion was
// fixed at creation time.
type UpdateTransactionRequest struct {
	Category    string `json:"category,omitempty" validate:"omitempty,budget_category"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Date        string `json:"date,omitempty" validate:"iso_date"`
}
