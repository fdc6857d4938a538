package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// NotificationReaderSvc defines read operations for notifications
type NotificationReaderSvc interface {
	// ListNotifications retrieves the caller's notifications, newest first,
	// together with the unread count.
	ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, int, error)
}

// NotificationWriterSvc defines write operations for notifications
type NotificationWriterSvc interface {
	// Notify creates a notification for a user.
	Notify(ctx context.Context, userID string, notificationType domain.NotificationType, message string) error

	// MarkRead marks one of the caller's notifications as read.
	MarkRead(ctx context.Context, notificationID string, requestingUserID string) error

	// MarkAllRead marks all of the caller's notifications as read.
	MarkAllRead(ctx context.Context, requestingUserID string) error
}

// NotificationSvcFacade combines all notification service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
}
