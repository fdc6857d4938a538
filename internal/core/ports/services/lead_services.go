package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/dto"
)

// LeadReaderSvc defines read operations for leads
type LeadReaderSvc interface {
	// GetLeadByID retrieves a lead, enforcing row ownership for non-admin callers.
	GetLeadByID(ctx context.Context, leadID string, access domain.AccessResolution, requestingUserID string) (*domain.Lead, error)

	// ListLeads retrieves the caller's leads, or all leads for admin callers.
	ListLeads(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.Lead, error)
}

// LeadWriterSvc defines write operations for leads
type LeadWriterSvc interface {
	// CreateLead creates a lead owned by the requesting user.
	CreateLead(ctx context.Context, req dto.CreateLeadRequest, requestingUserID string) (*domain.Lead, error)

	// UpdateLead updates a lead the caller can access.
	UpdateLead(ctx context.Context, leadID string, req dto.UpdateLeadRequest, access domain.AccessResolution, requestingUserID string) (*domain.Lead, error)

	// DeleteLead removes a lead the caller can access.
	DeleteLead(ctx context.Context, leadID string, access domain.AccessResolution, requestingUserID string) error
}

// LeadSvcFacade combines all lead service interfaces
type LeadSvcFacade interface {
	LeadReaderSvc
	LeadWriterSvc
}
