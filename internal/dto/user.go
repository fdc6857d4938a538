package dto

import (
	"github.com/hostvana/property_management_app/internal/core/domain"
)

// UserResponse defines the profile data returned for a user.
type UserResponse struct {
	UserID      string `json:"userID"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	IsAdmin     bool   `json:"isAdmin"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		CompanyName: user.CompanyName,
		Phone:       user.Phone,
		Role:        string(user.Role),
		IsAdmin:     user.IsAdmin,
	}
}

// UpdateProfileRequest defines the data allowed for self-service profile edits.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProfileRequest struct {
	CompanyName *string `json:"companyName"`
	Phone       *string `json:"phone"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

// PermissionsResponse is the resolved RBAC state for the calling user.
type PermissionsResponse struct {
	Role        string               `json:"role"`
	IsAdmin     bool                 `json:"isAdmin"`
	Permissions []PermissionResponse `json:"permissions"`
}

// PermissionResponse is a single (resource, action) grant.
type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// ToPermissionsResponse converts a domain.AccessResolution to PermissionsResponse DTO
func ToPermissionsResponse(res domain.AccessResolution) PermissionsResponse {
	perms := make([]PermissionResponse, len(res.Permissions))
	for i, p := range res.Permissions {
		perms[i] = PermissionResponse{Resource: p.Resource, Action: p.Action}
	}
	return PermissionsResponse{
		Role:        string(res.Role),
		IsAdmin:     res.IsAdmin(),
		Permissions: perms,
	}
}
