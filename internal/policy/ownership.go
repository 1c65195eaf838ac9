package policy

import (
	"context"

	"github.com/rentdesk/rentdesk/gate"
	"github.com/rentdesk/rentdesk/internal/models"
)

// TenantOwned is implemented by records that belong to a single tenant.
type TenantOwned interface {
	OwnerTenantID() string
}

// OwnershipPolicy restricts a record to the tenant it belongs to. A tenant
// identity without a tenant linkage matches nothing.
type OwnershipPolicy struct{}

// Can allows access when the record's owning tenant matches the identity's
// tenant linkage. A nil resource (list/create checks) passes; profile
// permissions already gate those. Records that are not TenantOwned are
// denied so nothing slips through without an ownership rule.
func (OwnershipPolicy) Can(_ context.Context, id models.Identity, _ gate.Action, resource any) bool {
	if resource == nil {
		return true
	}
	owned, ok := resource.(TenantOwned)
	if !ok {
		return false
	}
	return id.TenantID != "" && owned.OwnerTenantID() == id.TenantID
}

// AdminBypassPolicy lets admin identities through unconditionally and defers
// everyone else to the inner policy.
type AdminBypassPolicy struct {
	inner gate.Policy[models.Identity]
}

func (p AdminBypassPolicy) Can(ctx context.Context, id models.Identity, action gate.Action, resource any) bool {
	if id.Role == models.RoleAdmin {
		return true
	}
	return p.inner.Can(ctx, id, action, resource)
}

// referencePolicy marks a collection as shared read-only reference data:
// every authenticated identity may view any record. Used for properties,
// which tenants see in full (e.g. for lease selection).
type referencePolicy struct{}

func (referencePolicy) Can(_ context.Context, _ models.Identity, _ gate.Action, _ any) bool {
	return true
}
