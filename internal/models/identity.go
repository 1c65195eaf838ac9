package models

// Role is the coarse role of an authenticated principal.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTenant Role = "tenant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTenant
}

// Identity is the authenticated principal for a session. It is immutable for
// the lifetime of the session and is what gets persisted between runs.
// TenantID is set iff Role is RoleTenant and links the principal to its
// Tenant record.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	TenantID    string `json:"tenantId,omitempty"`
}

// IsZero reports whether the identity is unset (logged-out state).
func (i Identity) IsZero() bool {
	return i == Identity{}
}
