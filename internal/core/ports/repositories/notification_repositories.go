package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// FindNotificationByID retrieves a specific notification.
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// FindNotificationsByUser retrieves a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, notificationID string) error

	// MarkAllRead marks all of a user's notifications as read.
	MarkAllRead(ctx context.Context, userID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
