package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to its response DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           string(n.Type),
		Message:        n.Message,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotificationsResponse wraps a user's notifications with the unread count.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// ToListNotificationsResponse converts domain notifications plus the unread
// count to the list DTO
func ToListNotificationsResponse(notifications []domain.Notification, unread int) ListNotificationsResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{Notifications: res, UnreadCount: unread}
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
