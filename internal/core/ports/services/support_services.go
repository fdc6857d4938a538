package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/dto"
)

// SupportSvcFacade manages help-desk requests.
type SupportSvcFacade interface {
	// CreateSupportRequest files a request for the calling user.
	CreateSupportRequest(ctx context.Context, req dto.CreateSupportRequest, requestingUserID string) (*domain.SupportRequest, error)

	// ListSupportRequests retrieves the caller's requests, or all requests
	// for admin callers.
	ListSupportRequests(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.SupportRequest, error)

	// ResolveSupportRequest updates a request's status (admin only).
	ResolveSupportRequest(ctx context.Context, requestID string, status domain.SupportRequestStatus) (*domain.SupportRequest, error)
}
