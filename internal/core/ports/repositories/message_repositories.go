package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// MessageReader defines read operations for lead discussion threads
type MessageReader interface {
	// FindMessageByID retrieves a specific message.
	FindMessageByID(ctx context.Context, messageID string) (*domain.Message, error)

	// FindMessagesByLead retrieves a lead's thread in chronological order.
	FindMessagesByLead(ctx context.Context, leadID string) ([]domain.Message, error)
}

// MessageWriter defines write operations for lead discussion threads
type MessageWriter interface {
	// SaveMessage persists a new message.
	SaveMessage(ctx context.Context, message domain.Message) error

	// UpdateDeliveryState records the outcome of a message send.
	UpdateDeliveryState(ctx context.Context, messageID string, state domain.MessageDeliveryState) error

	// DeleteMessage removes a message.
	DeleteMessage(ctx context.Context, messageID string) error
}

// MessageRepositoryFacade combines all message repository interfaces
type MessageRepositoryFacade interface {
	MessageReader
	MessageWriter
}
