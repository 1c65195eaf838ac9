package services

import (
	"context"
	"strings"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// Lists produces the searchable, filterable list views. Every query runs
// over the caller's authorized scope only, so a tenant never matches search
// text against another tenant's records.
type Lists struct {
	properties *store.Properties
	tenants    *store.Tenants
	payments   *store.Payments
	invoices   *store.Invoices
}

func NewLists(properties *store.Properties, tenants *store.Tenants, payments *store.Payments, invoices *store.Invoices) *Lists {
	return &Lists{properties: properties, tenants: tenants, payments: payments, invoices: invoices}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// PaymentFilter narrows the payment list. An empty Search matches
// everything; an empty Status means all statuses.
type PaymentFilter struct {
	Search string
	Status models.BillingStatus
}

// PaymentList is the filtered payments plus the money totals of the
// filtered set.
type PaymentList struct {
	Items        []models.Payment
	PaidCents    int64
	PendingCents int64
	OverdueCents int64
}

// Payments lists payments matching the filter. Search text matches the
// tenant name, the property name, or the payment description.
func (l *Lists) Payments(ctx context.Context, f PaymentFilter) (PaymentList, error) {
	payments, err := l.payments.List(ctx)
	if err != nil {
		return PaymentList{}, err
	}
	tenantNames, propertyNames, err := l.nameIndexes(ctx)
	if err != nil {
		return PaymentList{}, err
	}

	out := PaymentList{Items: make([]models.Payment, 0, len(payments))}
	for _, p := range payments {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Search != "" &&
			!containsFold(tenantNames[p.TenantID], f.Search) &&
			!containsFold(propertyNames[p.PropertyID], f.Search) &&
			!containsFold(p.Description, f.Search) {
			continue
		}
		out.Items = append(out.Items, p)
		switch p.Status {
		case models.StatusPaid:
			out.PaidCents += p.AmountCents
		case models.StatusPending:
			out.PendingCents += p.AmountCents
		case models.StatusOverdue:
			out.OverdueCents += p.AmountCents
		}
	}
	return out, nil
}

// InvoiceFilter narrows the invoice list, like PaymentFilter.
type InvoiceFilter struct {
	Search string
	Status models.BillingStatus
}

// InvoiceList is the filtered invoices plus the totals of the filtered set.
type InvoiceList struct {
	Items        []models.Invoice
	TotalCents   int64
	PendingCents int64
	OverdueCents int64
}

// Invoices lists invoices matching the filter. Search text matches the
// tenant name, the property name, or the invoice id.
func (l *Lists) Invoices(ctx context.Context, f InvoiceFilter) (InvoiceList, error) {
	invoices, err := l.invoices.List(ctx)
	if err != nil {
		return InvoiceList{}, err
	}
	tenantNames, propertyNames, err := l.nameIndexes(ctx)
	if err != nil {
		return InvoiceList{}, err
	}

	out := InvoiceList{Items: make([]models.Invoice, 0, len(invoices))}
	for _, inv := range invoices {
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		if f.Search != "" &&
			!containsFold(tenantNames[inv.TenantID], f.Search) &&
			!containsFold(propertyNames[inv.PropertyID], f.Search) &&
			!containsFold(inv.ID, f.Search) {
			continue
		}
		out.Items = append(out.Items, inv)
		out.TotalCents += inv.AmountCents
		switch inv.Status {
		case models.StatusPending:
			out.PendingCents += inv.AmountCents
		case models.StatusOverdue:
			out.OverdueCents += inv.AmountCents
		}
	}
	return out, nil
}

// Properties lists properties whose name, address, or type contains the
// search text.
func (l *Lists) Properties(ctx context.Context, search string) ([]models.Property, error) {
	properties, err := l.properties.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return properties, nil
	}
	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if containsFold(p.Name, search) || containsFold(p.Address, search) || containsFold(string(p.Type), search) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Tenants lists tenants whose name, email, or phone contains the search
// text. Phone matching is case-sensitive.
func (l *Lists) Tenants(ctx context.Context, search string) ([]models.Tenant, error) {
	tenants, err := l.tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return tenants, nil
	}
	out := make([]models.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if containsFold(t.Name, search) || containsFold(t.Email, search) || strings.Contains(t.Phone, search) {
			out = append(out, t)
		}
	}
	return out, nil
}

// nameIndexes builds id-to-name lookups from the caller's visible tenants
// and properties, for search matching and display labels.
func (l *Lists) nameIndexes(ctx context.Context) (tenantNames, propertyNames map[string]string, err error) {
	tenants, err := l.tenants.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	properties, err := l.properties.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	tenantNames = make(map[string]string, len(tenants))
	for _, t := range tenants {
		tenantNames[t.ID] = t.Name
	}
	propertyNames = make(map[string]string, len(properties))
	for _, p := range properties {
		propertyNames[p.ID] = p.Name
	}
	return tenantNames, propertyNames, nil
}
