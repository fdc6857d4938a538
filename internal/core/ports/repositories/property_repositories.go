package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// PropertyReader defines read operations for property data
type PropertyReader interface {
	// FindPropertyByID retrieves a specific property.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// FindPropertiesByOwner retrieves all properties assigned to a user.
	FindPropertiesByOwner(ctx context.Context, ownerUserID string) ([]domain.Property, error)

	// FindProperties retrieves a paginated list of all properties (admin view).
	FindProperties(ctx context.Context, limit int, offset int) ([]domain.Property, error)
}

// PropertyWriter defines write operations for property data
type PropertyWriter interface {
	// SaveProperty persists a new property.
	SaveProperty(ctx context.Context, property domain.Property) error

	// UpdateProperty updates an existing property.
	UpdateProperty(ctx context.Context, property domain.Property) error

	// DeleteProperty removes a property.
	DeleteProperty(ctx context.Context, propertyID string) error
}

// PropertyRepositoryFacade combines all property repository interfaces
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}
