package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader carries the trace ID between clients and the API.
const TraceIDHeader = "X-Trace-ID"

// TraceIDContextKey is where the trace ID lives inside the Echo context.
const TraceIDContextKey = "trace_id"

// RequestID attaches a trace ID to every request. A caller-supplied
// X-Trace-ID is honored so IDs survive across service hops; otherwise a
// fresh UUID is minted. The ID is mirrored into the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(TraceIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(TraceIDContextKey, id)
			c.Response().Header().Set(TraceIDHeader, id)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored by RequestID, or "" when the
// middleware has not run for this context.
func GetTraceID(c echo.Context) string {
	if id, ok := c.Get(TraceIDContextKey).(string); ok {
		return id
	}
	return ""
}
