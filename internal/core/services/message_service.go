package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
)

// messageService implements MessageSvcFacade. Threads hang off leads, so
// access checks delegate to the lead service.
type messageService struct {
	BaseService
	messageRepo  portsrepo.MessageRepositoryFacade
	leadService  portssvc.LeadReaderSvc
	notification portssvc.NotificationWriterSvc
}

// MessageServiceOption configures the message service.
type MessageServiceOption func(*messageService)

// WithMentionNotifications wires the notification fan-out for @-mentions.
func WithMentionNotifications(svc portssvc.NotificationWriterSvc) MessageServiceOption {
	return func(s *messageService) {
		s.notification = svc
	}
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo portsrepo.MessageRepositoryFacade, leadService portssvc.LeadReaderSvc, opts ...MessageServiceOption) portssvc.MessageSvcFacade {
	s := &messageService{
		messageRepo: messageRepo,
		leadService: leadService,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListMessages retrieves a lead's thread in chronological order.
func (s *messageService) ListMessages(ctx context.Context, leadID string, access domain.AccessResolution, requestingUserID string) ([]domain.Message, error) {
	if _, err := s.leadService.GetLeadByID(ctx, leadID, access, requestingUserID); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.FindMessagesByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// PostMessage appends a message to a lead's thread. The persisted row is
// always confirmed; a store failure surfaces as an error so the client can
// drop its optimistic pending copy and restore the input. Mention
// notifications are fanned out after the write and never fail the post.
func (s *messageService) PostMessage(ctx context.Context, leadID string, req dto.CreateMessageRequest, access domain.AccessResolution, requestingUserID string) (*domain.Message, error) {
	lead, err := s.leadService.GetLeadByID(ctx, leadID, access, requestingUserID)
	if err != nil {
		return nil, err
	}

	message := domain.Message{
		MessageID:     uuid.NewString(),
		LeadID:        lead.LeadID,
		SenderID:      requestingUserID,
		Content:       req.Content,
		Mentions:      req.Mentions,
		DeliveryState: domain.MessageConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := s.messageRepo.SaveMessage(ctx, message); err != nil {
		s.LogError(ctx, err, "Failed to save message", slog.String("lead_id", leadID))
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	if s.notification != nil {
		for _, mentionedUserID := range req.Mentions {
			if mentionedUserID == requestingUserID {
				continue
			}
			text := fmt.Sprintf("You were mentioned in a discussion on lead %s", lead.Name)
			if err := s.notification.Notify(ctx, mentionedUserID, domain.NotificationMention, text); err != nil {
				s.LogWarn(ctx, "Failed to notify mentioned user",
					slog.String("mentioned_user_id", mentionedUserID),
					slog.String("error", err.Error()))
			}
		}
	}

	return &message, nil
}
