package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/dto"
)

// MessageReaderSvc defines read operations for lead discussion threads
type MessageReaderSvc interface {
	// ListMessages retrieves a lead's thread in chronological order.
	ListMessages(ctx context.Context, leadID string, access domain.AccessResolution, requestingUserID string) ([]domain.Message, error)
}

// MessageWriterSvc defines write operations for lead discussion threads
type MessageWriterSvc interface {
	// PostMessage appends a message to a lead's thread and fans out a
	// notification per mentioned user. The returned message is confirmed;
	// a persistence failure reports failed so clients can roll back their
	// optimistic copy.
	PostMessage(ctx context.Context, leadID string, req dto.CreateMessageRequest, access domain.AccessResolution, requestingUserID string) (*domain.Message, error)
}

// MessageSvcFacade combines all message service interfaces
type MessageSvcFacade interface {
	MessageReaderSvc
	MessageWriterSvc
}
