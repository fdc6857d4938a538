package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
)

// leadService implements LeadSvcFacade. Leads are scoped to their owning user
// unless the caller has admin capability.
type leadService struct {
	BaseService
	leadRepo portsrepo.LeadRepositoryFacade
}

// NewLeadService creates a new lead service.
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade) portssvc.LeadSvcFacade {
	return &leadService{leadRepo: leadRepo}
}

// GetLeadByID retrieves a lead, enforcing row ownership for non-admin callers.
func (s *leadService) GetLeadByID(ctx context.Context, leadID string, access domain.AccessResolution, requestingUserID string) (*domain.Lead, error) {
	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if !access.IsAdmin() && lead.UserID != requestingUserID {
		return nil, apperrors.ErrNotFound
	}
	return lead, nil
}

// ListLeads retrieves the caller's leads, or all leads for admin callers.
func (s *leadService) ListLeads(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.Lead, error) {
	if access.IsAdmin() {
		leads, err := s.leadRepo.FindLeads(ctx, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list leads: %w", err)
		}
		return leads, nil
	}
	leads, err := s.leadRepo.FindLeadsByOwner(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads for owner: %w", err)
	}
	return leads, nil
}

// CreateLead creates a lead owned by the requesting user. New leads always
// enter the pipeline at the first stage.
func (s *leadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest, requestingUserID string) (*domain.Lead, error) {
	now := time.Now()
	lead := domain.Lead{
		LeadID:     uuid.NewString(),
		UserID:     requestingUserID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     domain.LeadNew,
		Source:     req.Source,
		Notes:      req.Notes,
		PropertyID: req.PropertyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.leadRepo.SaveLead(ctx, lead); err != nil {
		s.LogError(ctx, err, "Failed to save lead", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.LogInfo(ctx, "Lead created", slog.String("lead_id", lead.LeadID))
	return &lead, nil
}

// UpdateLead updates a lead the caller can access.
func (s *leadService) UpdateLead(ctx context.Context, leadID string, req dto.UpdateLeadRequest, access domain.AccessResolution, requestingUserID string) (*domain.Lead, error) {
	lead, err := s.GetLeadByID(ctx, leadID, access, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Source != nil {
		lead.Source = *req.Source
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	if req.AssignedTo != nil {
		lead.AssignedTo = req.AssignedTo
	}
	if req.PropertyID != nil {
		lead.PropertyID = req.PropertyID
	}
	if req.Status != nil {
		status := domain.LeadStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid lead status %q", apperrors.ErrValidation, *req.Status)
		}
		lead.Status = status
	}

	lead.LastUpdatedAt = time.Now()
	lead.LastUpdatedBy = requestingUserID

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		s.LogError(ctx, err, "Failed to update lead", slog.String("lead_id", leadID))
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

// DeleteLead removes a lead the caller can access.
func (s *leadService) DeleteLead(ctx context.Context, leadID string, access domain.AccessResolution, requestingUserID string) error {
	if _, err := s.GetLeadByID(ctx, leadID, access, requestingUserID); err != nil {
		return err
	}
	if err := s.leadRepo.DeleteLead(ctx, leadID); err != nil {
		s.LogError(ctx, err, "Failed to delete lead", slog.String("lead_id", leadID))
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	s.LogInfo(ctx, "Lead deleted", slog.String("lead_id", leadID))
	return nil
}
