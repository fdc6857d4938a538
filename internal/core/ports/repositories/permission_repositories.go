package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// PermissionReader defines read operations against the static grant table.
type PermissionReader interface {
	// FindPermissionsByRole retrieves all (resource, action) grants for a role.
	FindPermissionsByRole(ctx context.Context, role domain.UserRole) ([]domain.Permission, error)
}

// PermissionRepositoryFacade combines all permission repository interfaces.
// Grants are static seed data; there is no writer.
type PermissionRepositoryFacade interface {
	PermissionReader
}
