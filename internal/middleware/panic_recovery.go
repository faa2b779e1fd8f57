package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts panics in downstream handlers into a SYSTEM_001
// response so a single broken request cannot take the process down.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					respondToPanic(c, r)
				}
			}()
			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, cause any) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Panic recovered",
		"trace_id", traceID,
		"panic", cause,
		"stack_trace", string(debug.Stack()),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	body := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, body); err != nil {
		slog.Error("Failed to send panic recovery response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
