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

// Payments is the payment collection. Payments are recorded and read, never
// edited or deleted.
type Payments struct {
	db    *gorm.DB
	authz *policy.Authorizer
	ids   *counter
}

func NewPayments(db *gorm.DB, authz *policy.Authorizer) (*Payments, error) {
	ids, err := newCounter(db, &models.Payment{})
	if err != nil {
		return nil, err
	}
	return &Payments{db: db, authz: authz, ids: ids}, nil
}

// List returns the payments visible to the caller in insertion order: all
// for admins, own payments for a tenant identity.
func (s *Payments) List(ctx context.Context) ([]models.Payment, error) {
	if err := s.authz.Authorize(ctx, gate.ActionList, policy.ResourcePayment, nil); err != nil {
		return nil, err
	}
	var items []models.Payment
	if err := s.db.WithContext(ctx).Order("seq").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return s.authz.VisiblePayments(ctx, items), nil
}

// Get returns one payment; ids outside the caller's scope come back as
// ErrNotFound.
func (s *Payments) Get(ctx context.Context, id string) (models.Payment, error) {
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourcePayment, nil); err != nil {
		return models.Payment{}, err
	}
	var p models.Payment
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrNotFound
		}
		return models.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourcePayment, p); err != nil {
		return models.Payment{}, ErrNotFound
	}
	return p, nil
}

// Create records a payment. Admin only; both references must exist, and
// PaidDate must be present exactly when the status is paid.
func (s *Payments) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	if err := s.authz.Authorize(ctx, gate.ActionCreate, policy.ResourcePayment, nil); err != nil {
		return models.Payment{}, err
	}
	if err := s.validate(ctx, p); err != nil {
		return models.Payment{}, err
	}
	p.ID, p.Seq = s.ids.next()
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}

func (s *Payments) validate(ctx context.Context, p models.Payment) error {
	v := validation.Violations{}
	validation.Required("tenantId", p.TenantID, v)
	validation.Required("propertyId", p.PropertyID, v)
	validation.NonNegativeCents("amount", p.AmountCents, v)
	validation.OneOf("status", string(p.Status), v,
		string(models.StatusPaid), string(models.StatusPending),
		string(models.StatusOverdue))
	validation.OneOf("type", string(p.Type), v,
		string(models.PaymentRent), string(models.PaymentDeposit),
		string(models.PaymentFee))
	if p.Status == models.StatusPaid && p.PaidDate == nil {
		v["paidDate"] = "required"
	}
	if p.Status != models.StatusPaid && p.PaidDate != nil {
		v["paidDate"] = "must_be_unset"
	}
	if err := s.checkRef(ctx, v, "tenantId", &models.Tenant{}, p.TenantID); err != nil {
		return err
	}
	if err := s.checkRef(ctx, v, "propertyId", &models.Property{}, p.PropertyID); err != nil {
		return err
	}
	return violationsErr(v)
}

func (s *Payments) checkRef(ctx context.Context, v validation.Violations, field string, model any, id string) error {
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
