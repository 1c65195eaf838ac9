package policy

import (
	"context"
	"testing"

	"github.com/rentdesk/rentdesk/gate"
	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/session"
)

var (
	adminID = models.Identity{ID: "1", Email: "admin@rental.com", Role: models.RoleAdmin, DisplayName: "Admin User"}
	johnID  = models.Identity{ID: "2", Email: "john@email.com", Role: models.RoleTenant, DisplayName: "John Smith", TenantID: "1"}
	// A tenant account that was never linked to a tenant record.
	unlinkedID = models.Identity{ID: "9", Email: "ghost@email.com", Role: models.RoleTenant, DisplayName: "Ghost"}
)

func ctxFor(id models.Identity) context.Context {
	return session.WithIdentity(context.Background(), id)
}

func samplePayments() []models.Payment {
	return []models.Payment{
		{ID: "1", TenantID: "1"},
		{ID: "2", TenantID: "1"},
		{ID: "3", TenantID: "2"},
	}
}

func TestVisiblePayments_TenantScope(t *testing.T) {
	a := NewAuthorizer()
	got := a.VisiblePayments(ctxFor(johnID), samplePayments())
	if len(got) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(got))
	}
	for _, p := range got {
		if p.TenantID != "1" {
			t.Errorf("leaked payment %s owned by tenant %s", p.ID, p.TenantID)
		}
	}
}

func TestVisiblePayments_AdminSeesAllInOrder(t *testing.T) {
	a := NewAuthorizer()
	in := samplePayments()
	got := a.VisiblePayments(ctxFor(adminID), in)
	if len(got) != len(in) {
		t.Fatalf("expected %d payments, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Errorf("order changed at %d: got %s want %s", i, got[i].ID, in[i].ID)
		}
	}
}

func TestVisiblePayments_UnlinkedTenantSeesNothing(t *testing.T) {
	a := NewAuthorizer()
	if got := a.VisiblePayments(ctxFor(unlinkedID), samplePayments()); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestVisiblePayments_NoIdentity(t *testing.T) {
	a := NewAuthorizer()
	if got := a.VisiblePayments(context.Background(), samplePayments()); len(got) != 0 {
		t.Errorf("expected empty result without identity, got %d", len(got))
	}
}

func TestVisibleTenants_OwnRecordOnly(t *testing.T) {
	a := NewAuthorizer()
	tenants := []models.Tenant{{ID: "1", Name: "John Smith"}, {ID: "2", Name: "Jane Doe"}}
	got := a.VisibleTenants(ctxFor(johnID), tenants)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only own record, got %v", got)
	}
}

func TestVisibleProperties_TenantGetsFullReferenceList(t *testing.T) {
	a := NewAuthorizer()
	properties := []models.Property{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	if got := a.VisibleProperties(ctxFor(johnID), properties); len(got) != 3 {
		t.Errorf("expected full property list for tenant, got %d", len(got))
	}
}

func TestAuthorize_Mutations(t *testing.T) {
	a := NewAuthorizer()
	if err := a.Authorize(ctxFor(adminID), gate.ActionCreate, ResourceProperty, nil); err != nil {
		t.Errorf("admin create denied: %v", err)
	}
	if err := a.Authorize(ctxFor(johnID), gate.ActionCreate, ResourceProperty, nil); err != gate.ErrUnauthorized {
		t.Errorf("tenant create allowed: %v", err)
	}
	if err := a.Authorize(context.Background(), gate.ActionList, ResourcePayment, nil); err != gate.ErrUnauthorized {
		t.Errorf("anonymous list allowed: %v", err)
	}
}

func TestVisibleNav(t *testing.T) {
	adminTitles := titles(VisibleNav(adminID))
	wantAdmin := []string{"Dashboard", "Properties", "Tenants", "Payments", "Invoices"}
	if !equal(adminTitles, wantAdmin) {
		t.Errorf("admin nav = %v, want %v", adminTitles, wantAdmin)
	}

	tenantTitles := titles(VisibleNav(johnID))
	wantTenant := []string{"Dashboard", "Payments", "Invoices", "My Rent"}
	if !equal(tenantTitles, wantTenant) {
		t.Errorf("tenant nav = %v, want %v", tenantTitles, wantTenant)
	}

	if got := VisibleNav(models.Identity{}); len(got) != 0 {
		t.Errorf("logged-out nav = %v, want empty", got)
	}
}

func titles(entries []NavEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
