package domain

import "time"

// SupportRequestStatus tracks handling of a support request.
type SupportRequestStatus string

const (
	SupportOpen     SupportRequestStatus = "open"
	SupportResolved SupportRequestStatus = "resolved"
)

// SupportRequest is a help-desk ticket filed by an authenticated user.
type SupportRequest struct {
	RequestID string               `json:"requestID"`
	UserID    string               `json:"userID"`
	Subject   string               `json:"subject"`
	Message   string               `json:"message"`
	Status    SupportRequestStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}
