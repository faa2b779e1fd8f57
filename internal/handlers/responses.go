package handlers

import (
	"net/http"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (expected, client-facing
// conditions) or SendSystemError (anything internal). Both attach the
// request's trace ID and serve the shared error envelope, so no handler
// should call echo.NewHTTPError or c.JSON with an ad-hoc error body.

// TraceIDContextKey mirrors the middleware context key so handlers can
// read the trace ID without importing the middleware package.
const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse aliases the shared error envelope for test convenience.
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if id, ok := c.Get(TraceIDContextKey).(string); ok {
		return id
	}
	return ""
}

// SendError serves a known error code with its mapped HTTP status.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	body := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(body.GetHTTPStatus(), body)
}

// SendSystemError hides the underlying error behind a generic SYSTEM_001
// envelope so internals never leak to clients.
func SendSystemError(c echo.Context, err error) error {
	body, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, body)
}
