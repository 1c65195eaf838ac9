package policy

import (
	"context"

	"github.com/rentdesk/rentdesk/gate"
	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/session"
)

// Authorizer is the central authorization point. It pulls the caller
// identity from the context, so operations never rely on ambient
// current-user state.
type Authorizer struct {
	gate     *gate.Gate[models.Identity]
	resolver *gate.CachedResolver[models.Identity]
}

// NewAuthorizer builds the gate with the rental domain's policies: tenants,
// payments, and invoices are ownership-scoped (admins bypass), properties
// are shared read-only reference data.
func NewAuthorizer() *Authorizer {
	resolver := newResolver()
	g := gate.New[models.Identity](resolver)

	owned := AdminBypassPolicy{inner: OwnershipPolicy{}}
	g.Register(ResourceTenant, owned)
	g.Register(ResourcePayment, owned)
	g.Register(ResourceInvoice, owned)
	g.Register(ResourceProperty, referencePolicy{})

	return &Authorizer{gate: g, resolver: resolver}
}

// Authorize checks whether the context's identity may perform action on the
// given resource. Returns gate.ErrUnauthorized when there is no identity or
// the identity is denied.
func (a *Authorizer) Authorize(ctx context.Context, action gate.Action, resourceType string, resource any) error {
	id, _ := session.IdentityFromContext(ctx)
	return a.gate.Authorize(ctx, id, action, resourceType, resource)
}

// Can is a convenience wrapper returning bool instead of error.
func (a *Authorizer) Can(ctx context.Context, action gate.Action, resourceType string, resource any) bool {
	return a.Authorize(ctx, action, resourceType, resource) == nil
}

// CanProfile checks only the role permission, without a record in hand.
// Useful to decide up front whether a view or button should exist.
func (a *Authorizer) CanProfile(ctx context.Context, action gate.Action, resourceType string) bool {
	id, _ := session.IdentityFromContext(ctx)
	return a.gate.CanProfile(ctx, id, action, resourceType)
}

// Visible narrows a collection to the records the context's identity may
// see, preserving input order. Admin identities keep the full collection.
func Visible[T any](ctx context.Context, a *Authorizer, resourceType string, items []T) []T {
	id, _ := session.IdentityFromContext(ctx)
	return gate.Narrow(ctx, a.gate, id, resourceType, items)
}

// Typed narrowing helpers, one per collection.

func (a *Authorizer) VisibleProperties(ctx context.Context, items []models.Property) []models.Property {
	return Visible(ctx, a, ResourceProperty, items)
}

func (a *Authorizer) VisibleTenants(ctx context.Context, items []models.Tenant) []models.Tenant {
	return Visible(ctx, a, ResourceTenant, items)
}

func (a *Authorizer) VisiblePayments(ctx context.Context, items []models.Payment) []models.Payment {
	return Visible(ctx, a, ResourcePayment, items)
}

func (a *Authorizer) VisibleInvoices(ctx context.Context, items []models.Invoice) []models.Invoice {
	return Visible(ctx, a, ResourceInvoice, items)
}
