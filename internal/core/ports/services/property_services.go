package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/dto"
)

// PropertyReaderSvc defines read operations for properties
type PropertyReaderSvc interface {
	// GetPropertyByID retrieves a property, enforcing row ownership for
	// non-admin callers.
	GetPropertyByID(ctx context.Context, propertyID string, access domain.AccessResolution, requestingUserID string) (*domain.Property, error)

	// ListProperties retrieves the caller's properties, or all properties
	// for admin callers.
	ListProperties(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.Property, error)
}

// PropertyWriterSvc defines write operations for properties
type PropertyWriterSvc interface {
	// CreateProperty creates a property owned by the requesting user.
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest, requestingUserID string) (*domain.Property, error)

	// UpdateProperty updates a property the caller can access.
	UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest, access domain.AccessResolution, requestingUserID string) (*domain.Property, error)

	// DeleteProperty removes a property the caller can access.
	DeleteProperty(ctx context.Context, propertyID string, access domain.AccessResolution, requestingUserID string) error
}

// PropertySvcFacade combines all property service interfaces
type PropertySvcFacade interface {
	PropertyReaderSvc
	PropertyWriterSvc
}
