package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to create a property.
// NightlyRate is in the entry currency; normalization to USD happens in the
// service layer.
type CreatePropertyRequest struct {
	Name        string          `json:"name" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	UnitCount   int             `json:"unitCount" binding:"required,min=1"`
	NightlyRate decimal.Decimal `json:"nightlyRate" binding:"required"`
	Currency    domain.Currency `json:"currency" binding:"required,oneof=USD TRY"`
	Rating      float64         `json:"rating" binding:"omitempty,min=0,max=5"`
}

// UpdatePropertyRequest defines the data allowed for updating a property.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePropertyRequest struct {
	Name        *string          `json:"name"`
	Address     *string          `json:"address"`
	UnitCount   *int             `json:"unitCount" binding:"omitempty,min=1"`
	NightlyRate *decimal.Decimal `json:"nightlyRate"`
	Currency    *domain.Currency `json:"currency" binding:"omitempty,oneof=USD TRY"`
	Rating      *float64         `json:"rating" binding:"omitempty,min=0,max=5"`
	Status      *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// PropertyResponse defines the data returned for a property.
type PropertyResponse struct {
	PropertyID       string           `json:"propertyID"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	UnitCount        int              `json:"unitCount"`
	NightlyRate      decimal.Decimal  `json:"nightlyRate"` // USD
	OriginalRate     *decimal.Decimal `json:"originalRate,omitempty"`
	OriginalCurrency string           `json:"originalCurrency,omitempty"`
	Rating           float64          `json:"rating"`
	Status           string           `json:"status"`
	AssignedTo       string           `json:"assignedTo"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}

// ToPropertyResponse converts a domain.Property to PropertyResponse DTO
func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:       p.PropertyID,
		Name:             p.Name,
		Address:          p.Address,
		UnitCount:        p.UnitCount,
		NightlyRate:      p.NightlyRate,
		OriginalRate:     p.OriginalRate,
		OriginalCurrency: string(p.OriginalCurrency),
		Rating:           p.Rating,
		Status:           string(p.Status),
		AssignedTo:       p.AssignedTo,
		CreatedAt:        p.CreatedAt,
		LastUpdatedAt:    p.LastUpdatedAt,
	}
}

// ToListPropertiesResponse converts a slice of domain.Property to response DTOs
func ToListPropertiesResponse(properties []domain.Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		res[i] = ToPropertyResponse(&p)
	}
	return res
}

// ListPropertiesParams defines query parameters for listing properties.
type ListPropertiesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
