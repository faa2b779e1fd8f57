package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound          ErrorCode = "BUDGET_001"
	BudgetInvalidAmount     ErrorCode = "BUDGET_002"
	BudgetInvalidPeriod     ErrorCode = "BUDGET_003"
	BudgetInvalidCurrency   ErrorCode = "BUDGET_004"
	BudgetDuplicateCategory ErrorCode = "BUDGET_005"
	BudgetUnknownCategory   ErrorCode = "BUDGET_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound            ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount       ErrorCode = "TRANSACTION_002"
	TransactionInvalidType         ErrorCode = "TRANSACTION_003"
	TransactionUnknownCategory     ErrorCode = "TRANSACTION_004"
	TransactionInvalidCurrency     ErrorCode = "TRANSACTION_005"
	TransactionDuplicateOccurrence ErrorCode = "TRANSACTION_006"
)

// Recurring series error codes (RECURRING_*)
const (
	RecurringSeriesNotFound ErrorCode = "RECURRING_001"
	RecurringInvalidDay     ErrorCode = "RECURRING_002"
	RecurringAlreadyStopped ErrorCode = "RECURRING_003"
	RecurringCascadeFailed  ErrorCode = "RECURRING_004"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidAmount ErrorCode = "GOAL_002"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationNotFound ErrorCode = "NOTIFICATION_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Budget errors
	BudgetNotFound:          "No budget is set for this month",
	BudgetInvalidAmount:     "Budget amount must be positive",
	BudgetInvalidPeriod:     "Invalid budget month or year",
	BudgetInvalidCurrency:   "Unsupported budget currency",
	BudgetDuplicateCategory: "Duplicate category allocation in budget",
	BudgetUnknownCategory:   "Unknown budget category key",

	// Transaction errors
	TransactionNotFound:            "Transaction not found",
	TransactionInvalidAmount:       "Invalid transaction amount",
	TransactionInvalidType:         "Invalid transaction type",
	TransactionUnknownCategory:     "Unknown transaction category key",
	TransactionInvalidCurrency:     "Unsupported transaction currency",
	TransactionDuplicateOccurrence: "An occurrence for this series already exists on this date",

	// Recurring series errors
	RecurringSeriesNotFound: "Recurring series not found",
	RecurringInvalidDay:     "Recurring day must be between 1 and 31",
	RecurringAlreadyStopped: "Recurring series is already stopped",
	RecurringCascadeFailed:  "Failed to delete recurring series consistently; no changes were applied",

	// Savings goal errors
	GoalNotFound:      "Savings goal not found",
	GoalInvalidAmount: "Invalid goal amount",

	// Notification errors
	NotificationNotFound: "Notification not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
