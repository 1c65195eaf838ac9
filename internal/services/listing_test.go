package services

import (
	"testing"

	"github.com/rentdesk/rentdesk/internal/models"
)

func TestPaymentListFilters(t *testing.T) {
	_, lists := setupServices(t)

	all, err := lists.Payments(adminCtx, PaymentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(all.Items))
	}
	if all.PaidCents != 300000 {
		t.Errorf("PaidCents = %d, want 300000", all.PaidCents)
	}
	if all.OverdueCents != 120000 {
		t.Errorf("OverdueCents = %d, want 120000", all.OverdueCents)
	}
	if all.PendingCents != 0 {
		t.Errorf("PendingCents = %d, want 0", all.PendingCents)
	}

	overdue, err := lists.Payments(adminCtx, PaymentFilter{Status: models.StatusOverdue})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(overdue.Items) != 1 || overdue.Items[0].ID != "2" {
		t.Fatalf("overdue filter: %v", overdue.Items)
	}
	// Totals cover the filtered set only.
	if overdue.PaidCents != 0 || overdue.OverdueCents != 120000 {
		t.Errorf("overdue totals: paid=%d overdue=%d", overdue.PaidCents, overdue.OverdueCents)
	}

	// Search matches the tenant name, case-insensitively.
	byTenant, err := lists.Payments(adminCtx, PaymentFilter{Search: "jane"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byTenant.Items) != 1 || byTenant.Items[0].TenantID != "2" {
		t.Fatalf("tenant-name search: %v", byTenant.Items)
	}

	// Search matches the payment description.
	byDesc, err := lists.Payments(adminCtx, PaymentFilter{Search: "february"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byDesc.Items) != 1 || byDesc.Items[0].ID != "2" {
		t.Fatalf("description search: %v", byDesc.Items)
	}

	// Search and status combine.
	none, err := lists.Payments(adminCtx, PaymentFilter{Search: "jane", Status: models.StatusOverdue})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(none.Items) != 0 {
		t.Fatalf("combined filter: %v", none.Items)
	}
}

func TestPaymentListTenantScope(t *testing.T) {
	_, lists := setupServices(t)

	got, err := lists.Payments(johnCtx, PaymentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 own payments, got %d", len(got.Items))
	}
	if got.PaidCents != 120000 || got.OverdueCents != 120000 {
		t.Errorf("own totals: paid=%d overdue=%d", got.PaidCents, got.OverdueCents)
	}

	// Search text against another tenant's name finds nothing.
	other, err := lists.Payments(johnCtx, PaymentFilter{Search: "jane"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other.Items) != 0 {
		t.Errorf("tenant matched records outside their scope: %v", other.Items)
	}
}

func TestInvoiceListFilters(t *testing.T) {
	_, lists := setupServices(t)

	all, err := lists.Invoices(adminCtx, InvoiceFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all.Items) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(all.Items))
	}
	if all.TotalCents != 305000 {
		t.Errorf("TotalCents = %d, want 305000", all.TotalCents)
	}
	if all.PendingCents != 305000 {
		t.Errorf("PendingCents = %d, want 305000", all.PendingCents)
	}

	// Search matches the invoice id.
	byID, err := lists.Invoices(adminCtx, InvoiceFilter{Search: "2"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byID.Items) != 1 || byID.Items[0].ID != "2" {
		t.Fatalf("id search: %v", byID.Items)
	}

	byProperty, err := lists.Invoices(adminCtx, InvoiceFilter{Search: "oak street"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byProperty.Items) != 1 || byProperty.Items[0].PropertyID != "2" {
		t.Fatalf("property-name search: %v", byProperty.Items)
	}

	paid, err := lists.Invoices(adminCtx, InvoiceFilter{Status: models.StatusPaid})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paid.Items) != 0 {
		t.Fatalf("paid filter: %v", paid.Items)
	}
}

func TestPropertySearch(t *testing.T) {
	_, lists := setupServices(t)

	byAddress, err := lists.Properties(adminCtx, "oak st")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byAddress) != 1 || byAddress[0].ID != "2" {
		t.Fatalf("address search: %v", byAddress)
	}

	byType, err := lists.Properties(adminCtx, "condo")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byType) != 1 || byType[0].ID != "3" {
		t.Fatalf("type search: %v", byType)
	}

	all, err := lists.Properties(adminCtx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty search: %d properties, want 3", len(all))
	}
}

func TestTenantSearch(t *testing.T) {
	_, lists := setupServices(t)

	byEmail, err := lists.Tenants(adminCtx, "JANE@EMAIL")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].ID != "2" {
		t.Fatalf("email search: %v", byEmail)
	}

	// Phone search matches the stored formatting exactly.
	byPhone, err := lists.Tenants(adminCtx, "(555) 123")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].ID != "1" {
		t.Fatalf("phone search: %v", byPhone)
	}
}
