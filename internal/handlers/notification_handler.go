package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles the user-facing notification endpoints
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications returns the caller's notifications
// @Summary List notifications
// @Description Retrieve the caller's notifications, newest first, with offset pagination
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param unread_only query bool false "Only unread notifications" default(false)
// @Param offset query int false "Result offset" default(0)
// @Param limit query int false "Number of results per page (max 200)" default(50)
// @Success 200 {object} SuccessResponse{data=[]models.Notification} "Notifications"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	unreadOnly := c.QueryParam("unread_only") == "true"
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)

	notifications, total, err := h.notificationService.ListNotifications(userID, unreadOnly, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: notifications,
		Meta: map[string]interface{}{
			"total":  total,
			"offset": offset,
			"limit":  limit,
		},
	})
}

// MarkRead marks a notification as read
// @Summary Mark notification read
// @Description Mark one of the caller's notifications as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Notification marked read"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid notification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid notification ID"))
	}

	if err := h.notificationService.MarkRead(userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return SendError(c, apierrors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Notification marked read"})
}

// DeleteNotification removes a notification
// @Summary Delete notification
// @Description Delete one of the caller's notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Notification deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid notification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid notification ID"))
	}

	if err := h.notificationService.DeleteNotification(userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return SendError(c, apierrors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Notification deleted"})
}
