package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// SupportReader defines read operations for support requests
type SupportReader interface {
	// FindRequestByID retrieves a specific support request.
	FindSupportRequestByID(ctx context.Context, requestID string) (*domain.SupportRequest, error)

	// FindSupportRequestsByUser retrieves a user's requests, newest first.
	FindSupportRequestsByUser(ctx context.Context, userID string) ([]domain.SupportRequest, error)

	// FindSupportRequests retrieves a paginated list of all requests (admin view).
	FindSupportRequests(ctx context.Context, limit int, offset int) ([]domain.SupportRequest, error)
}

// SupportWriter defines write operations for support requests
type SupportWriter interface {
	// SaveSupportRequest persists a new support request.
	SaveSupportRequest(ctx context.Context, request domain.SupportRequest) error

	// UpdateSupportRequestStatus updates a request's status.
	UpdateSupportRequestStatus(ctx context.Context, requestID string, status domain.SupportRequestStatus) error
}

// SupportRepositoryFacade combines all support request repository interfaces
type SupportRepositoryFacade interface {
	SupportReader
	SupportWriter
}
