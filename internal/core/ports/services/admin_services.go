package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// AdminApprovalSvcFacade manages the admin capability approval workflow.
type AdminApprovalSvcFacade interface {
	// OpenRequest opens a pending approval request for a user who declared
	// the admin role at sign-up. Idempotent while a request is pending.
	OpenRequest(ctx context.Context, userID string) (*domain.AdminRequest, error)

	// ListRequests retrieves approval requests in a status, oldest first.
	ListRequests(ctx context.Context, status domain.AdminRequestStatus, limit, offset int) ([]domain.AdminRequest, error)

	// ApproveRequest approves a pending request and flips the subject
	// profile's IsAdmin flag.
	ApproveRequest(ctx context.Context, requestID string, decidedBy string) (*domain.AdminRequest, error)

	// RejectRequest rejects a pending request; the subject keeps the declared
	// role without admin capability.
	RejectRequest(ctx context.Context, requestID string, decidedBy string) (*domain.AdminRequest, error)
}
