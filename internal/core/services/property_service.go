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
	"github.com/hostvana/property_management_app/internal/utils/finance"
)

// propertyService implements PropertySvcFacade. Reads and writes are scoped
// to the owning user unless the caller has admin capability.
type propertyService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepositoryFacade
}

// NewPropertyService creates a new property service.
func NewPropertyService(propertyRepo portsrepo.PropertyRepositoryFacade) portssvc.PropertySvcFacade {
	return &propertyService{propertyRepo: propertyRepo}
}

// GetPropertyByID retrieves a property, enforcing row ownership for non-admin callers.
func (s *propertyService) GetPropertyByID(ctx context.Context, propertyID string, access domain.AccessResolution, requestingUserID string) (*domain.Property, error) {
	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if !access.IsAdmin() && property.AssignedTo != requestingUserID {
		// Report not-found rather than forbidden so row existence leaks nothing.
		return nil, apperrors.ErrNotFound
	}
	return property, nil
}

// ListProperties retrieves the caller's properties, or all properties for admins.
func (s *propertyService) ListProperties(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.Property, error) {
	if access.IsAdmin() {
		properties, err := s.propertyRepo.FindProperties(ctx, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list properties: %w", err)
		}
		return properties, nil
	}
	properties, err := s.propertyRepo.FindPropertiesByOwner(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner: %w", err)
	}
	return properties, nil
}

// CreateProperty creates a property owned by the requesting user. The nightly
// rate is normalized to USD at write time; the entry form is kept alongside.
func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest, requestingUserID string) (*domain.Property, error) {
	if !req.Currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.Currency)
	}

	now := time.Now()
	rate := req.NightlyRate
	property := domain.Property{
		PropertyID:  uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		UnitCount:   req.UnitCount,
		NightlyRate: finance.NormalizeAmount(rate, req.Currency),
		Rating:      req.Rating,
		Status:      domain.PropertyActive,
		AssignedTo:  requestingUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.Currency != domain.CurrencyUSD {
		property.OriginalRate = &rate
		property.OriginalCurrency = req.Currency
	}

	if err := s.propertyRepo.SaveProperty(ctx, property); err != nil {
		s.LogError(ctx, err, "Failed to save property", slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.LogInfo(ctx, "Property created", slog.String("property_id", property.PropertyID))
	return &property, nil
}

// UpdateProperty updates a property the caller can access.
func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req dto.UpdatePropertyRequest, access domain.AccessResolution, requestingUserID string) (*domain.Property, error) {
	property, err := s.GetPropertyByID(ctx, propertyID, access, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.UnitCount != nil {
		property.UnitCount = *req.UnitCount
	}
	if req.Rating != nil {
		property.Rating = *req.Rating
	}
	if req.Status != nil {
		property.Status = domain.PropertyStatus(*req.Status)
	}
	if req.NightlyRate != nil {
		currency := domain.CurrencyUSD
		if req.Currency != nil {
			currency = *req.Currency
		} else if property.OriginalCurrency != "" {
			currency = property.OriginalCurrency
		}
		if !currency.IsValid() {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
		}
		property.NightlyRate = finance.NormalizeAmount(*req.NightlyRate, currency)
		if currency != domain.CurrencyUSD {
			rate := *req.NightlyRate
			property.OriginalRate = &rate
			property.OriginalCurrency = currency
		} else {
			property.OriginalRate = nil
			property.OriginalCurrency = ""
		}
	}

	property.LastUpdatedAt = time.Now()
	property.LastUpdatedBy = requestingUserID

	if err := s.propertyRepo.UpdateProperty(ctx, *property); err != nil {
		s.LogError(ctx, err, "Failed to update property", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

// DeleteProperty removes a property the caller can access.
func (s *propertyService) DeleteProperty(ctx context.Context, propertyID string, access domain.AccessResolution, requestingUserID string) error {
	if _, err := s.GetPropertyByID(ctx, propertyID, access, requestingUserID); err != nil {
		return err
	}
	if err := s.propertyRepo.DeleteProperty(ctx, propertyID); err != nil {
		s.LogError(ctx, err, "Failed to delete property", slog.String("property_id", propertyID))
		return fmt.Errorf("failed to delete property: %w", err)
	}
	s.LogInfo(ctx, "Property deleted", slog.String("property_id", propertyID))
	return nil
}
