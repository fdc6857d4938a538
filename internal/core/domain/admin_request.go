package domain

// AdminRequestStatus tracks the admin approval workflow. A user who declares
// role admin at sign-up stays unapproved until a reviewer approves the
// request, which flips the profile's IsAdmin flag.
type AdminRequestStatus string

const (
	AdminRequestPending  AdminRequestStatus = "pending"
	AdminRequestApproved AdminRequestStatus = "approved"
	AdminRequestRejected AdminRequestStatus = "rejected"
)

// AdminRequest is a pending request for admin capability.
type AdminRequest struct {
	RequestID string             `json:"requestID"`
	UserID    string             `json:"userID"`
	Status    AdminRequestStatus `json:"status"`
	AuditFields
}
