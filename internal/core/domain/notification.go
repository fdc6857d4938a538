package domain

import "time"

// NotificationType classifies what produced a notification.
type NotificationType string

const (
	NotificationMention      NotificationType = "mention"
	NotificationAdminRequest NotificationType = "admin_request"
	NotificationAdminResult  NotificationType = "admin_result"
	NotificationSystem       NotificationType = "system"
)

// Notification is an in-app notice delivered to a single user.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Message        string           `json:"message"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
