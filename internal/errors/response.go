package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the envelope every API error is serialized as.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, a human-readable message, optional
// per-field details, and the request's trace ID.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption mutates a response during construction.
type ErrorOption func(*ErrorResponse)

// WithDetails attaches detail lines to the response.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for a known error code.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	er := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: []string{},
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(er)
	}
	return er
}

// NewValidationError builds a VALIDATION_001 envelope from per-field
// messages.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError replaces an internal error with the generic SYSTEM_001
// envelope. The original error comes back unchanged for logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// httpStatusByCode maps every error code to the status it is served
// with. Codes absent from the map are treated as internal errors.
var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:          http.StatusBadRequest,
	ValidationRequiredField:    http.StatusBadRequest,
	ValidationInvalidFormat:    http.StatusBadRequest,
	ValidationOutOfRange:       http.StatusBadRequest,
	ValidationInvalidDate:      http.StatusBadRequest,
	BudgetInvalidAmount:        http.StatusBadRequest,
	BudgetInvalidPeriod:        http.StatusBadRequest,
	BudgetInvalidCurrency:      http.StatusBadRequest,
	TransactionInvalidAmount:   http.StatusBadRequest,
	TransactionInvalidType:     http.StatusBadRequest,
	TransactionInvalidCurrency: http.StatusBadRequest,
	RecurringInvalidDay:        http.StatusBadRequest,
	GoalInvalidAmount:          http.StatusBadRequest,

	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,

	AuthInsufficientPermission: http.StatusForbidden,

	BudgetNotFound:          http.StatusNotFound,
	TransactionNotFound:     http.StatusNotFound,
	RecurringSeriesNotFound: http.StatusNotFound,
	GoalNotFound:            http.StatusNotFound,
	NotificationNotFound:    http.StatusNotFound,

	TransactionDuplicateOccurrence: http.StatusConflict,
	RecurringCascadeFailed:         http.StatusConflict,

	BudgetDuplicateCategory:    http.StatusUnprocessableEntity,
	BudgetUnknownCategory:      http.StatusUnprocessableEntity,
	TransactionUnknownCategory: http.StatusUnprocessableEntity,
	RecurringAlreadyStopped:    http.StatusUnprocessableEntity,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemInternalError:      http.StatusInternalServerError,
	SystemDatabaseError:      http.StatusInternalServerError,
}

// GetHTTPStatus resolves the HTTP status for an error code.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the status this response should be served with.
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
