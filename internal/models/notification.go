package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeBudgetWarning         = "budget_warning"
	NotificationTypeBudgetCategoryWarning = "budget_category_warning"
	NotificationTypeReminder              = "reminder"
	NotificationTypeInfo                  = "info"
)

var ErrInvalidNotificationType = errors.New("invalid notification type")

// Notification is an event emitted toward the user. The core only creates
// these; delivery (socket push, mail) belongs to the collaborating layer.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"type:varchar(30);not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	Metadata  JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Notification
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return n.Validate()
}

// Validate validates the notification fields
func (n *Notification) Validate() error {
	if n.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidNotificationType(n.Type) {
		return ErrInvalidNotificationType
	}
	if n.Message == "" {
		return errors.New("notification message is required")
	}
	return nil
}

// TableName returns the table name for Notification
func (n *Notification) TableName() string {
	return "notifications"
}

// IsValidNotificationType checks if the notification type is valid
func IsValidNotificationType(notificationType string) bool {
	switch notificationType {
	case NotificationTypeBudgetWarning, NotificationTypeBudgetCategoryWarning,
		NotificationTypeReminder, NotificationTypeInfo:
		return true
	default:
		return false
	}
}
