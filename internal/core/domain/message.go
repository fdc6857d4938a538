package domain

import "time"

// MessageDeliveryState is the tagged variant tracking a locally-created
// message through confirmation. Clients show Pending optimistically; the
// server only ever persists Confirmed rows, and a Failed report tells the
// client to remove its optimistic copy and restore the input.
type MessageDeliveryState string

const (
	MessagePending   MessageDeliveryState = "pending"
	MessageConfirmed MessageDeliveryState = "confirmed"
	MessageFailed    MessageDeliveryState = "failed"
)

// Message is a chat message attached to a lead. Mentions hold user ids
// referenced with @ in the content; each mention produces a notification.
type Message struct {
	MessageID     string               `json:"messageID"`
	LeadID        string               `json:"leadID"`
	SenderID      string               `json:"senderID"`
	Content       string               `json:"content"`
	Read          bool                 `json:"read"`
	Mentions      []string             `json:"mentions,omitempty"`
	DeliveryState MessageDeliveryState `json:"deliveryState"`
	CreatedAt     time.Time            `json:"createdAt"`
}
