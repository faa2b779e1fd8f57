package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecurringHandler handles the recurring series lifecycle endpoints
type RecurringHandler struct {
	recurringService services.RecurringServiceInterface
}

// NewRecurringHandler creates a new recurring series handler
func NewRecurringHandler(recurringService services.RecurringServiceInterface) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// ListSeries returns the caller's recurring series
// @Summary List recurring series
// @Description Retrieve the caller's recurring series with their occurrence counts
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.RecurringSeriesInfo} "Recurring series"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recurring [get]
func (h *RecurringHandler) ListSeries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	series, err := h.recurringService.ListSeries(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: series})
}

// StopSeries halts future generation for a series
// @Summary Stop recurring series
// @Description Stop a recurring series. Past occurrences stay in the ledger; no new ones are generated. Stopping an already-stopped or unknown series succeeds without effect.
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Series group ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Series stopped"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid group ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Series belongs to another user"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recurring/{groupId}/stop [post]
func (h *RecurringHandler) StopSeries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid group ID"))
	}

	if err := h.recurringService.Stop(userID, groupID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return SendError(c, apierrors.AuthInsufficientPermission)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Recurring series stopped"})
}

// DeleteSeries removes a series and its whole history
// @Summary Delete recurring series
// @Description Delete a recurring series and every occurrence it generated, reversing any savings goal contributions. The cascade is atomic. Deleting an unknown series succeeds without effect.
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Series group ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Series deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid group ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Series belongs to another user"
// @Failure 409 {object} errors.ErrorResponse "RECURRING_004 - Cascade could not complete"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recurring/{groupId} [delete]
func (h *RecurringHandler) DeleteSeries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid group ID"))
	}

	if err := h.recurringService.DeleteAll(userID, groupID); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			return SendError(c, apierrors.AuthInsufficientPermission)
		case errors.Is(err, services.ErrCascadeInconsistent):
			return SendError(c, apierrors.RecurringCascadeFailed)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Recurring series deleted"})
}
