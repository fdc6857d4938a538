package domain

// Actions and resources used in the grant table. Kept as plain strings so the
// seed data and route gates share one vocabulary.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	ResourceProperties   = "properties"
	ResourceTransactions = "transactions"
	ResourceLeads        = "leads"
	ResourceMessages     = "messages"
	ResourceCalendar     = "calendar_events"
	ResourceDashboard    = "dashboard"
	ResourceAnalytics    = "analytics"
)

// Permission is a static (role, resource, action) grant. Grants attach to
// roles, not individual users, and carry no hierarchy: admin does not
// implicitly inherit owner grants.
type Permission struct {
	Role     UserRole `json:"role"`
	Resource string   `json:"resource"`
	Action   string   `json:"action"`
}

// AccessResolution is the outcome of resolving a signed-in identity against
// the permissions store. The zero value denies everything, which makes
// "resolution pending" and "resolution failed" behaviorally identical to
// "not allowed" at every call site.
type AccessResolution struct {
	Role            UserRole     `json:"role"`
	IsAdminApproved bool         `json:"isAdminApproved"`
	Permissions     []Permission `json:"permissions"`
}

// IsAdmin reports whether the user has admin capability. Both conditions are
// required: a declared admin role without the approval flag is not an admin.
func (r AccessResolution) IsAdmin() bool {
	return r.Role == RoleAdmin && r.IsAdminApproved
}

// IsOwner reports whether the resolved role is owner.
func (r AccessResolution) IsOwner() bool {
	return r.Role == RoleOwner
}

// Can reports whether the permission set contains an exact (action, resource)
// match. There are no wildcard or hierarchy semantics.
func (r AccessResolution) Can(action, resource string) bool {
	for _, p := range r.Permissions {
		if p.Action == action && p.Resource == resource {
			return true
		}
	}
	return false
}

// FailClosed is the resolution used when the permissions store could not be
// read after all retries: no role, no approval, no permissions.
func FailClosed() AccessResolution {
	return AccessResolution{Role: RoleNone, IsAdminApproved: false, Permissions: []Permission{}}
}
