package services

import (
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// notificationService implements NotificationServiceInterface and, as the
// default emitter, NotificationEmitterInterface: emitted events are
// persisted for the user to read. Push delivery is the transport layer's
// concern and happens outside this core.
type notificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repositories.NotificationRepositoryInterface) NotificationServiceInterface {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// Emit records an outbound notification event
func (s *notificationService) Emit(notification *models.Notification) error {
	return s.notificationRepo.Create(notification)
}

// ListNotifications retrieves a user's notifications with pagination
func (s *notificationService) ListNotifications(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.notificationRepo.GetByUserID(userID, unreadOnly, offset, limit)
}

// MarkRead marks one of the user's notifications as read
func (s *notificationService) MarkRead(userID, id uuid.UUID) error {
	return s.notificationRepo.MarkRead(id, userID)
}

// DeleteNotification deletes one of the user's notifications
func (s *notificationService) DeleteNotification(userID, id uuid.UUID) error {
	return s.notificationRepo.Delete(id, userID)
}
