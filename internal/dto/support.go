package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// CreateSupportRequest defines the data needed to file a support request.
type CreateSupportRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SupportRequestResponse defines the data returned for a support request.
type SupportRequestResponse struct {
	RequestID string    `json:"requestID"`
	UserID    string    `json:"userID"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToSupportRequestResponse converts a domain.SupportRequest to its response DTO
func ToSupportRequestResponse(r *domain.SupportRequest) SupportRequestResponse {
	return SupportRequestResponse{
		RequestID: r.RequestID,
		UserID:    r.UserID,
		Subject:   r.Subject,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ToListSupportRequestsResponse converts a slice of domain.SupportRequest to response DTOs
func ToListSupportRequestsResponse(requests []domain.SupportRequest) []SupportRequestResponse {
	res := make([]SupportRequestResponse, len(requests))
	for i, r := range requests {
		res[i] = ToSupportRequestResponse(&r)
	}
	return res
}

// UpdateSupportStatusRequest defines the data for resolving a support request.
type UpdateSupportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open resolved"`
}
