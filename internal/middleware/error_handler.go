package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fintrack/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler is installed as Echo's error handler. Every
// error that escapes a handler ends up here and leaves as a uniform
// envelope with a trace ID, a log line, and a bumped error counter.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	body, status := classifyError(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", body.Error.Code,
		"status", status,
		"message", body.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(body.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, body); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// classifyError turns whatever escaped the handler into an error
// envelope plus the HTTP status to serve it with.
func classifyError(err error, traceID string) (*errors.ErrorResponse, int) {
	switch e := err.(type) {
	case *echo.HTTPError:
		body := errors.NewErrorResponse(
			statusErrorCode(e.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", e.Message)),
		)
		return body, e.Code
	case validator.ValidationErrors:
		fields := make(map[string]string, len(e))
		for _, fe := range e {
			fields[fe.Field()] = describeFieldError(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	default:
		body, _ := errors.WrapSystemError(err, traceID)
		return body, body.GetHTTPStatus()
	}
}

var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:          errors.ValidationGeneral,
	http.StatusUnauthorized:        errors.AuthMissingToken,
	http.StatusForbidden:           errors.AuthInsufficientPermission,
	http.StatusNotFound:            errors.TransactionNotFound,
	http.StatusMethodNotAllowed:    errors.ValidationGeneral,
	http.StatusUnprocessableEntity: errors.ValidationGeneral,
	http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
	http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
}

func statusErrorCode(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemInternalError
}

// fixedTagMessages covers validation tags whose message takes no
// parameter. Parameterized tags are handled in describeFieldError.
var fixedTagMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email address",
	"alpha":           "must contain only alphabetic characters",
	"alphanum":        "must contain only alphanumeric characters",
	"numeric":         "must be a valid number",
	"uuid":            "must be a valid UUID",
	"uuid4":           "must be a valid UUID v4",
	"currency_code":   "must be a supported ISO currency code",
	"decimal_amount":  "must be a positive decimal amount",
	"exchange_rate":   "must be a positive decimal exchange rate",
	"budget_category": "must be a known spending category",
	"iso_date":        "must be a date in YYYY-MM-DD format",
}

func describeFieldError(fe validator.FieldError) string {
	if msg, ok := fixedTagMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		return boundMessage(fe, "at least")
	case "max":
		return boundMessage(fe, "at most")
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// boundMessage phrases min/max depending on whether the field is text
// or a number.
func boundMessage(fe validator.FieldError, bound string) string {
	if _, ok := fe.Value().(string); ok {
		return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
	}
	return fmt.Sprintf("must be %s %s", bound, fe.Param())
}
