package repositories

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// LeadReader defines read operations for lead data
type LeadReader interface {
	// FindLeadByID retrieves a specific lead.
	FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)

	// FindLeadsByOwner retrieves all leads assigned to a user, newest first.
	FindLeadsByOwner(ctx context.Context, ownerUserID string) ([]domain.Lead, error)

	// FindLeads retrieves a paginated list of all leads (admin view).
	FindLeads(ctx context.Context, limit int, offset int) ([]domain.Lead, error)
}

// LeadWriter defines write operations for lead data
type LeadWriter interface {
	// SaveLead persists a new lead.
	SaveLead(ctx context.Context, lead domain.Lead) error

	// UpdateLead updates an existing lead.
	UpdateLead(ctx context.Context, lead domain.Lead) error

	// DeleteLead removes a lead.
	DeleteLead(ctx context.Context, leadID string) error
}

// LeadRepositoryFacade combines all lead repository interfaces
type LeadRepositoryFacade interface {
	LeadReader
	LeadWriter
}
