package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
)

// supportService implements SupportSvcFacade.
type supportService struct {
	BaseService
	supportRepo portsrepo.SupportRepositoryFacade
}

// NewSupportService creates a new support service.
func NewSupportService(supportRepo portsrepo.SupportRepositoryFacade) portssvc.SupportSvcFacade {
	return &supportService{supportRepo: supportRepo}
}

// CreateSupportRequest files a request for the calling user.
func (s *supportService) CreateSupportRequest(ctx context.Context, req dto.CreateSupportRequest, requestingUserID string) (*domain.SupportRequest, error) {
	request := domain.SupportRequest{
		RequestID: uuid.NewString(),
		UserID:    requestingUserID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    domain.SupportOpen,
		CreatedAt: time.Now(),
	}
	if err := s.supportRepo.SaveSupportRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save support request", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to create support request: %w", err)
	}
	s.LogInfo(ctx, "Support request filed", slog.String("request_id", request.RequestID))
	return &request, nil
}

// ListSupportRequests retrieves the caller's requests, or all requests for admins.
func (s *supportService) ListSupportRequests(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.SupportRequest, error) {
	if access.IsAdmin() {
		requests, err := s.supportRepo.FindSupportRequests(ctx, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list support requests: %w", err)
		}
		return requests, nil
	}
	requests, err := s.supportRepo.FindSupportRequestsByUser(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list support requests for user: %w", err)
	}
	return requests, nil
}

// ResolveSupportRequest updates a request's status.
func (s *supportService) ResolveSupportRequest(ctx context.Context, requestID string, status domain.SupportRequestStatus) (*domain.SupportRequest, error) {
	request, err := s.supportRepo.FindSupportRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find support request: %w", err)
	}
	if err := s.supportRepo.UpdateSupportRequestStatus(ctx, requestID, status); err != nil {
		s.LogError(ctx, err, "Failed to update support request status", slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to update support request: %w", err)
	}
	request.Status = status
	return request, nil
}
