package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentdesk/rentdesk/gate"
	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/policy"
	"github.com/rentdesk/rentdesk/validation"
)

// Invoices is the invoice collection. Invoices are issued and read, never
// edited or deleted.
type Invoices struct {
	db    *gorm.DB
	authz *policy.Authorizer
	ids   *counter
}

func NewInvoices(db *gorm.DB, authz *policy.Authorizer) (*Invoices, error) {
	ids, err := newCounter(db, &models.Invoice{})
	if err != nil {
		return nil, err
	}
	return &Invoices{db: db, authz: authz, ids: ids}, nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// List returns the invoices visible to the caller in insertion order, with
// line items preloaded in authored order.
func (s *Invoices) List(ctx context.Context) ([]models.Invoice, error) {
	if err := s.authz.Authorize(ctx, gate.ActionList, policy.ResourceInvoice, nil); err != nil {
		return nil, err
	}
	var items []models.Invoice
	if err := s.db.WithContext(ctx).Preload("Items", orderedItems).Order("seq").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return s.authz.VisibleInvoices(ctx, items), nil
}

// Get returns one invoice; ids outside the caller's scope come back as
// ErrNotFound.
func (s *Invoices) Get(ctx context.Context, id string) (models.Invoice, error) {
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourceInvoice, nil); err != nil {
		return models.Invoice{}, err
	}
	var inv models.Invoice
	if err := s.db.WithContext(ctx).Preload("Items", orderedItems).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Invoice{}, ErrNotFound
		}
		return models.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourceInvoice, inv); err != nil {
		return models.Invoice{}, ErrNotFound
	}
	return inv, nil
}

// Create issues an invoice. Admin only. The invoice amount is always the
// sum of its line items; whatever the caller put in AmountCents is replaced.
func (s *Invoices) Create(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	if err := s.authz.Authorize(ctx, gate.ActionCreate, policy.ResourceInvoice, nil); err != nil {
		return models.Invoice{}, err
	}
	if err := s.validate(ctx, inv); err != nil {
		return models.Invoice{}, err
	}
	inv.ID, inv.Seq = s.ids.next()
	for i := range inv.Items {
		inv.Items[i].ID = 0
		inv.Items[i].InvoiceID = inv.ID
		inv.Items[i].Position = i
	}
	inv.AmountCents = inv.Total()
	if err := s.db.WithContext(ctx).Create(&inv).Error; err != nil {
		return models.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (s *Invoices) validate(ctx context.Context, inv models.Invoice) error {
	v := validation.Violations{}
	validation.Required("tenantId", inv.TenantID, v)
	validation.Required("propertyId", inv.PropertyID, v)
	validation.OneOf("status", string(inv.Status), v,
		string(models.StatusPaid), string(models.StatusPending),
		string(models.StatusOverdue))
	validation.NotBefore("dueDate", inv.DueDate, inv.IssueDate, v)
	if len(inv.Items) == 0 {
		v["items"] = "required"
	}
	for i, it := range inv.Items {
		field := fmt.Sprintf("items[%d]", i)
		validation.Required(field+".description", it.Description, v)
		validation.NonNegativeCents(field+".amount", it.AmountCents, v)
	}
	if err := s.checkRef(ctx, v, "tenantId", &models.Tenant{}, inv.TenantID); err != nil {
		return err
	}
	if err := s.checkRef(ctx, v, "propertyId", &models.Property{}, inv.PropertyID); err != nil {
		return err
	}
	return violationsErr(v)
}

func (s *Invoices) checkRef(ctx context.Context, v validation.Violations, field string, model any, id string) error {
	if _, seen := v[field]; seen {
		return nil
	}
	ok, err := recordExists(ctx, s.db, model, id)
	if err != nil {
		return fmt.Errorf("check %s reference: %w", field, err)
	}
	if !ok {
		v[field] = "unknown_reference"
	}
	return nil
}
