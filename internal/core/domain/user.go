package domain

import "time"

// UserRole is the role a user declares at sign-up. Declaring RoleAdmin does
// not grant admin capability by itself; the IsAdmin approval flag must also
// be set through the admin request workflow.
type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
	// RoleNone is the fail-closed role used when RBAC resolution is
	// impossible (not signed in, or the permissions store is unreachable).
	RoleNone UserRole = ""
)

// IsValid reports whether the role is one a user may declare.
func (r UserRole) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin
}

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an account and its profile. The profile fields
// (CompanyName, Phone, Role, IsAdmin) are one-to-one with the identity and
// mutated by self-service edits and the admin approval workflow.
type User struct {
	UserID      string       `json:"userID"`
	Email       string       `json:"email"`
	CompanyName string       `json:"companyName"`
	Phone       string       `json:"phone"`
	Role        UserRole     `json:"role"`
	IsAdmin     bool         `json:"isAdmin"` // approval flag, separate from Role
	PasswordHash string      `json:"-"`
	AuthProvider AuthProvider `json:"authProvider"`
	ProviderUserID string     `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	ResetTokenHash         string     `json:"-"`
	ResetTokenExpiryTime   *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
