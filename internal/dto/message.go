package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// CreateMessageRequest defines the data needed to post a message on a lead.
// Mentions are user ids referenced with @ in the content.
type CreateMessageRequest struct {
	Content  string   `json:"content" binding:"required"`
	Mentions []string `json:"mentions"`
}

// MessageResponse defines the data returned for a message. DeliveryState is
// always confirmed for persisted rows; pending exists only client-side.
type MessageResponse struct {
	MessageID     string    `json:"messageID"`
	LeadID        string    `json:"leadID"`
	SenderID      string    `json:"senderID"`
	Content       string    `json:"content"`
	Read          bool      `json:"read"`
	Mentions      []string  `json:"mentions,omitempty"`
	DeliveryState string    `json:"deliveryState"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToMessageResponse converts a domain.Message to MessageResponse DTO
func ToMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		MessageID:     m.MessageID,
		LeadID:        m.LeadID,
		SenderID:      m.SenderID,
		Content:       m.Content,
		Read:          m.Read,
		Mentions:      m.Mentions,
		DeliveryState: string(m.DeliveryState),
		CreatedAt:     m.CreatedAt,
	}
}

// ToListMessagesResponse converts a slice of domain.Message to response DTOs
func ToListMessagesResponse(messages []domain.Message) []MessageResponse {
	res := make([]MessageResponse, len(messages))
	for i, m := range messages {
		res[i] = ToMessageResponse(&m)
	}
	return res
}
