// Package policy configures the authorization gate for the rental domain:
// which role may do what, and which records a tenant identity can see.
package policy

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/gate"
	"github.com/rentdesk/rentdesk/internal/models"
)

// Resource types registered with the gate.
const (
	ResourceProperty = "property"
	ResourceTenant   = "tenant"
	ResourcePayment  = "payment"
	ResourceInvoice  = "invoice"
)

var (
	adminProfile = gate.NewStaticProfile("admin", gate.PermissionSuperAdmin)

	// Tenants get read access everywhere; per-record visibility is narrowed
	// further by the ownership policy. No mutation permissions at all.
	tenantProfile = gate.NewStaticProfile("tenant",
		gate.NewPermission(ResourceProperty, gate.ActionView),
		gate.NewPermission(ResourceProperty, gate.ActionList),
		gate.NewPermission(ResourceTenant, gate.ActionView),
		gate.NewPermission(ResourceTenant, gate.ActionList),
		gate.NewPermission(ResourcePayment, gate.ActionView),
		gate.NewPermission(ResourcePayment, gate.ActionList),
		gate.NewPermission(ResourceInvoice, gate.ActionView),
		gate.NewPermission(ResourceInvoice, gate.ActionList),
	)
)

// roleResolver maps an identity to its role profile. Unknown roles resolve
// to no profile, which the gate denies.
func roleResolver(_ context.Context, id models.Identity) (gate.Profile, error) {
	switch id.Role {
	case models.RoleAdmin:
		return adminProfile, nil
	case models.RoleTenant:
		return tenantProfile, nil
	default:
		return nil, nil
	}
}

// newResolver wraps the role resolver in the gate's TTL cache. Role
// resolution is static today, but the cache keeps the lookup path identical
// if profiles ever move to the database.
func newResolver() *gate.CachedResolver[models.Identity] {
	return gate.NewCachedResolver[models.Identity](
		gate.ResolverFunc[models.Identity](roleResolver), 5*time.Minute)
}
