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
)

// adminApprovalService implements the admin capability approval workflow.
// Approval is the only path that sets a profile's IsAdmin flag; the declared
// role alone never grants capability.
type adminApprovalService struct {
	BaseService
	adminRequestRepo portsrepo.AdminRequestRepositoryFacade
	userRepo         portsrepo.UserRepositoryFacade
	notification     portssvc.NotificationWriterSvc
}

// AdminApprovalOption configures the admin approval service.
type AdminApprovalOption func(*adminApprovalService)

// WithApprovalNotifications wires request lifecycle notifications to the
// subject user.
func WithApprovalNotifications(svc portssvc.NotificationWriterSvc) AdminApprovalOption {
	return func(s *adminApprovalService) {
		s.notification = svc
	}
}

// NewAdminApprovalService creates a new admin approval service.
func NewAdminApprovalService(adminRequestRepo portsrepo.AdminRequestRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, opts ...AdminApprovalOption) portssvc.AdminApprovalSvcFacade {
	s := &adminApprovalService{
		adminRequestRepo: adminRequestRepo,
		userRepo:         userRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenRequest opens a pending approval request. While one is already pending
// for the user the existing request is returned unchanged.
func (s *adminApprovalService) OpenRequest(ctx context.Context, userID string) (*domain.AdminRequest, error) {
	existing, err := s.adminRequestRepo.FindPendingRequestByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending admin requests: %w", err)
	}

	now := time.Now()
	request := domain.AdminRequest{
		RequestID: uuid.NewString(),
		UserID:    userID,
		Status:    domain.AdminRequestPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.adminRequestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save admin request", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to open admin request: %w", err)
	}

	s.notify(ctx, userID, domain.NotificationAdminRequest,
		"Your admin access request is pending review.")
	s.LogInfo(ctx, "Admin approval request opened",
		slog.String("request_id", request.RequestID), slog.String("user_id", userID))
	return &request, nil
}

// ListRequests retrieves approval requests in a status, oldest first.
func (s *adminApprovalService) ListRequests(ctx context.Context, status domain.AdminRequestStatus, limit, offset int) ([]domain.AdminRequest, error) {
	requests, err := s.adminRequestRepo.FindRequestsByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin requests: %w", err)
	}
	return requests, nil
}

// ApproveRequest approves a pending request and flips the subject profile's
// IsAdmin flag. Only pending requests can be decided.
func (s *adminApprovalService) ApproveRequest(ctx context.Context, requestID string, decidedBy string) (*domain.AdminRequest, error) {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetAdminApproval(ctx, request.UserID, true, decidedBy); err != nil {
		s.LogError(ctx, err, "Failed to set admin approval flag", slog.String("user_id", request.UserID))
		return nil, fmt.Errorf("failed to approve admin request: %w", err)
	}
	if err := s.adminRequestRepo.UpdateRequestStatus(ctx, requestID, domain.AdminRequestApproved, decidedBy); err != nil {
		return nil, fmt.Errorf("failed to record admin request decision: %w", err)
	}
	request.Status = domain.AdminRequestApproved

	s.notify(ctx, request.UserID, domain.NotificationAdminResult,
		"Your admin access request was approved.")
	s.LogInfo(ctx, "Admin request approved",
		slog.String("request_id", requestID), slog.String("decided_by", decidedBy))
	return request, nil
}

// RejectRequest rejects a pending request; the subject keeps the declared
// role without admin capability.
func (s *adminApprovalService) RejectRequest(ctx context.Context, requestID string, decidedBy string) (*domain.AdminRequest, error) {
	request, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.adminRequestRepo.UpdateRequestStatus(ctx, requestID, domain.AdminRequestRejected, decidedBy); err != nil {
		return nil, fmt.Errorf("failed to record admin request decision: %w", err)
	}
	request.Status = domain.AdminRequestRejected

	s.notify(ctx, request.UserID, domain.NotificationAdminResult,
		"Your admin access request was rejected.")
	s.LogInfo(ctx, "Admin request rejected",
		slog.String("request_id", requestID), slog.String("decided_by", decidedBy))
	return request, nil
}

func (s *adminApprovalService) pendingRequest(ctx context.Context, requestID string) (*domain.AdminRequest, error) {
	request, err := s.adminRequestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin request: %w", err)
	}
	if request.Status != domain.AdminRequestPending {
		return nil, fmt.Errorf("%w: request already decided", apperrors.ErrConflict)
	}
	return request, nil
}

func (s *adminApprovalService) notify(ctx context.Context, userID string, notificationType domain.NotificationType, message string) {
	if s.notification == nil {
		return
	}
	if err := s.notification.Notify(ctx, userID, notificationType, message); err != nil {
		s.LogWarn(ctx, "Failed to write admin request notification",
			slog.String("user_id", userID), slog.String("error", err.Error()))
	}
}
