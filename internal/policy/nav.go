package policy

import "github.com/rentdesk/rentdesk/internal/models"

// NavEntry is one navigation item. Roles is the exact set of roles that see
// the entry.
type NavEntry struct {
	Title string
	Path  string
	Roles []models.Role
}

var bothRoles = []models.Role{models.RoleAdmin, models.RoleTenant}

// Navigation is the static, ordered navigation of the dashboard.
var Navigation = []NavEntry{
	{Title: "Dashboard", Path: "/dashboard", Roles: bothRoles},
	{Title: "Properties", Path: "/dashboard/properties", Roles: []models.Role{models.RoleAdmin}},
	{Title: "Tenants", Path: "/dashboard/tenants", Roles: []models.Role{models.RoleAdmin}},
	{Title: "Payments", Path: "/dashboard/payments", Roles: bothRoles},
	{Title: "Invoices", Path: "/dashboard/invoices", Roles: bothRoles},
	{Title: "My Rent", Path: "/dashboard/my-rent", Roles: []models.Role{models.RoleTenant}},
}

// VisibleNav returns the navigation entries the identity's role may see,
// in declaration order. A zero identity sees nothing.
func VisibleNav(id models.Identity) []NavEntry {
	out := make([]NavEntry, 0, len(Navigation))
	for _, e := range Navigation {
		for _, r := range e.Roles {
			if r == id.Role {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
