package services

import (
	"context"
	"errors"

	"github.com/rentdesk/rentdesk/gate"
	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/session"
	"github.com/rentdesk/rentdesk/internal/store"
)

const recentCount = 3

// Dashboard assembles the summary figures for the landing view of each role.
type Dashboard struct {
	properties *store.Properties
	tenants    *store.Tenants
	payments   *store.Payments
	invoices   *store.Invoices
}

func NewDashboard(properties *store.Properties, tenants *store.Tenants, payments *store.Payments, invoices *store.Invoices) *Dashboard {
	return &Dashboard{properties: properties, tenants: tenants, payments: payments, invoices: invoices}
}

// AdminOverview is the portfolio-wide summary shown to admins.
type AdminOverview struct {
	TotalProperties    int
	OccupiedProperties int
	ActiveTenants      int
	OverduePayments    int
	RentDueCents       int64
	RecentProperties   []models.Property
	RecentPayments     []models.Payment
}

// TenantOverview is the personal summary shown to a tenant: their lease,
// their unit, their payment history, and the next invoice awaiting payment.
type TenantOverview struct {
	Lease       *models.Tenant
	Property    *models.Property
	Payments    []models.Payment
	NextInvoice *models.Invoice
}

// Overview dispatches to the overview matching the caller's role: an
// AdminOverview for admins, a TenantOverview for tenants.
func (d *Dashboard) Overview(ctx context.Context) (any, error) {
	id, ok := session.IdentityFromContext(ctx)
	if !ok {
		return nil, gate.ErrUnauthorized
	}
	switch id.Role {
	case models.RoleAdmin:
		return d.AdminOverview(ctx)
	case models.RoleTenant:
		return d.TenantOverview(ctx)
	default:
		return nil, gate.ErrUnauthorized
	}
}

// AdminOverview computes the admin dashboard figures. Callers without an
// admin identity are rejected rather than silently shown scoped-down
// numbers.
func (d *Dashboard) AdminOverview(ctx context.Context) (AdminOverview, error) {
	id, ok := session.IdentityFromContext(ctx)
	if !ok || id.Role != models.RoleAdmin {
		return AdminOverview{}, gate.ErrUnauthorized
	}

	properties, err := d.properties.List(ctx)
	if err != nil {
		return AdminOverview{}, err
	}
	tenants, err := d.tenants.List(ctx)
	if err != nil {
		return AdminOverview{}, err
	}
	payments, err := d.payments.List(ctx)
	if err != nil {
		return AdminOverview{}, err
	}
	invoices, err := d.invoices.List(ctx)
	if err != nil {
		return AdminOverview{}, err
	}

	occupancy := CountByStatus(properties, func(p models.Property) models.OccupancyStatus { return p.Status })
	tenancy := CountByStatus(tenants, func(t models.Tenant) models.TenancyStatus { return t.Status })
	paymentStatus := CountByStatus(payments, func(p models.Payment) models.BillingStatus { return p.Status })

	return AdminOverview{
		TotalProperties:    len(properties),
		OccupiedProperties: occupancy[models.OccupancyOccupied],
		ActiveTenants:      tenancy[models.TenancyActive],
		OverduePayments:    paymentStatus[models.StatusOverdue],
		RentDueCents: SumWhere(invoices,
			func(i models.Invoice) bool { return i.Status == models.StatusPending },
			func(i models.Invoice) int64 { return i.AmountCents }),
		RecentProperties: Recent(properties, recentCount),
		RecentPayments:   Recent(payments, recentCount),
	}, nil
}

// TenantOverview computes the personal dashboard for a tenant identity.
// A tenant account without a tenant linkage gets an empty overview.
func (d *Dashboard) TenantOverview(ctx context.Context) (TenantOverview, error) {
	id, ok := session.IdentityFromContext(ctx)
	if !ok || id.Role != models.RoleTenant {
		return TenantOverview{}, gate.ErrUnauthorized
	}

	out := TenantOverview{}
	if id.TenantID == "" {
		return out, nil
	}

	if lease, err := d.tenants.Get(ctx, id.TenantID); err == nil {
		out.Lease = &lease
		if prop, err := d.properties.Get(ctx, lease.PropertyID); err == nil {
			out.Property = &prop
		} else if !errors.Is(err, store.ErrNotFound) {
			return TenantOverview{}, err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return TenantOverview{}, err
	}

	payments, err := d.payments.List(ctx)
	if err != nil {
		return TenantOverview{}, err
	}
	out.Payments = payments

	invoices, err := d.invoices.List(ctx)
	if err != nil {
		return TenantOverview{}, err
	}
	for _, inv := range invoices {
		if inv.Status == models.StatusPending {
			next := inv
			out.NextInvoice = &next
			break
		}
	}
	return out, nil
}
