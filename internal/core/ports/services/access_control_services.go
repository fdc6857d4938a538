package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// AccessControlSvcFacade resolves a signed-in identity to its RBAC state.
type AccessControlSvcFacade interface {
	// Resolve loads the user's profile and role grants, retrying transient
	// store failures. When the store stays unreachable it returns the
	// fail-closed resolution together with ErrPermissionsUnavailable; it
	// never guesses a role.
	Resolve(ctx context.Context, userID string) (domain.AccessResolution, error)
}
