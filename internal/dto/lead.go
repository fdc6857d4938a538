package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// CreateLeadRequest defines the data needed to create a lead.
type CreateLeadRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Source     string  `json:"source"`
	Notes      string  `json:"notes"`
	PropertyID *string `json:"propertyID"`
}

// UpdateLeadRequest defines the data allowed for updating a lead.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateLeadRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Status     *string `json:"status" binding:"omitempty,oneof=new contacted qualified proposal negotiation closed lost"`
	Source     *string `json:"source"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assignedTo"`
	PropertyID *string `json:"propertyID"`
}

// LeadResponse defines the data returned for a lead.
type LeadResponse struct {
	LeadID        string    `json:"leadID"`
	UserID        string    `json:"userID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Status        string    `json:"status"`
	Source        string    `json:"source,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	AssignedTo    *string   `json:"assignedTo,omitempty"`
	PropertyID    *string   `json:"propertyID,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToLeadResponse converts a domain.Lead to LeadResponse DTO
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:        l.LeadID,
		UserID:        l.UserID,
		Name:          l.Name,
		Email:         l.Email,
		Phone:         l.Phone,
		Status:        string(l.Status),
		Source:        l.Source,
		Notes:         l.Notes,
		AssignedTo:    l.AssignedTo,
		PropertyID:    l.PropertyID,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToListLeadsResponse converts a slice of domain.Lead to response DTOs
func ToListLeadsResponse(leads []domain.Lead) []LeadResponse {
	res := make([]LeadResponse, len(leads))
	for i, l := range leads {
		res[i] = ToLeadResponse(&l)
	}
	return res
}

// ListLeadsParams defines query parameters for listing leads.
type ListLeadsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
