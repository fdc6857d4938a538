package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// AdminRequestReader defines read operations for admin approval requests
type AdminRequestReader interface {
	// FindRequestByID retrieves a specific admin approval request.
	FindRequestByID(ctx context.Context, requestID string) (*domain.AdminRequest, error)

	// FindPendingRequestByUser retrieves a user's pending request, if any.
	FindPendingRequestByUser(ctx context.Context, userID string) (*domain.AdminRequest, error)

	// FindRequestsByStatus retrieves requests in a given status, oldest first.
	FindRequestsByStatus(ctx context.Context, status domain.AdminRequestStatus, limit int, offset int) ([]domain.AdminRequest, error)
}

// AdminRequestWriter defines write operations for admin approval requests
type AdminRequestWriter interface {
	// SaveRequest persists a new admin approval request.
	SaveRequest(ctx context.Context, request domain.AdminRequest) error

	// UpdateRequestStatus records the decision on a request.
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.AdminRequestStatus, decidedBy string) error
}

// AdminRequestRepositoryFacade combines all admin request repository interfaces
type AdminRequestRepositoryFacade interface {
	AdminRequestReader
	AdminRequestWriter
}
