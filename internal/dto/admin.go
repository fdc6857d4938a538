package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// AdminRequestResponse defines the data returned for an admin approval request.
type AdminRequestResponse struct {
	RequestID string    `json:"requestID"`
	UserID    string    `json:"userID"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAdminRequestResponse converts a domain.AdminRequest to its response DTO
func ToAdminRequestResponse(r *domain.AdminRequest) AdminRequestResponse {
	return AdminRequestResponse{
		RequestID: r.RequestID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ToListAdminRequestsResponse converts a slice of domain.AdminRequest to response DTOs
func ToListAdminRequestsResponse(requests []domain.AdminRequest) []AdminRequestResponse {
	res := make([]AdminRequestResponse, len(requests))
	for i, r := range requests {
		res[i] = ToAdminRequestResponse(&r)
	}
	return res
}

// CreateOwnerRequest defines the data an admin provides to create an owner
// account on someone's behalf.
type CreateOwnerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"companyName" binding:"required"`
	Phone       string `json:"phone"`
}

// ListAdminRequestsParams defines query parameters for listing admin requests.
type ListAdminRequestsParams struct {
	Status string `form:"status,default=pending" binding:"omitempty,oneof=pending approved rejected"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}
