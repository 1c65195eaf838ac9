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

// Tenants is the tenant collection.
type Tenants struct {
	db    *gorm.DB
	authz *policy.Authorizer
	ids   *counter
}

func NewTenants(db *gorm.DB, authz *policy.Authorizer) (*Tenants, error) {
	ids, err := newCounter(db, &models.Tenant{})
	if err != nil {
		return nil, err
	}
	return &Tenants{db: db, authz: authz, ids: ids}, nil
}

// List returns the tenants visible to the caller in insertion order: all of
// them for admins, only the caller's own record for a tenant identity.
func (s *Tenants) List(ctx context.Context) ([]models.Tenant, error) {
	if err := s.authz.Authorize(ctx, gate.ActionList, policy.ResourceTenant, nil); err != nil {
		return nil, err
	}
	var items []models.Tenant
	if err := s.db.WithContext(ctx).Order("seq").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return s.authz.VisibleTenants(ctx, items), nil
}

// Get returns one tenant record; ids outside the caller's scope come back
// as ErrNotFound.
func (s *Tenants) Get(ctx context.Context, id string) (models.Tenant, error) {
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourceTenant, nil); err != nil {
		return models.Tenant{}, err
	}
	var t models.Tenant
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tenant{}, ErrNotFound
		}
		return models.Tenant{}, fmt.Errorf("get tenant: %w", err)
	}
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourceTenant, t); err != nil {
		return models.Tenant{}, ErrNotFound
	}
	return t, nil
}

// Create assigns a fresh id and stores the tenant. Admin only; the
// referenced property must exist.
func (s *Tenants) Create(ctx context.Context, t models.Tenant) (models.Tenant, error) {
	if err := s.authz.Authorize(ctx, gate.ActionCreate, policy.ResourceTenant, nil); err != nil {
		return models.Tenant{}, err
	}
	if err := s.validate(ctx, t); err != nil {
		return models.Tenant{}, err
	}
	t.ID, t.Seq = s.ids.next()
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return models.Tenant{}, fmt.Errorf("create tenant: %w", err)
	}
	return t, nil
}

// Update replaces the tenant with the matching id. Admin only.
func (s *Tenants) Update(ctx context.Context, t models.Tenant) (models.Tenant, error) {
	if err := s.authz.Authorize(ctx, gate.ActionUpdate, policy.ResourceTenant, nil); err != nil {
		return models.Tenant{}, err
	}
	if err := s.validate(ctx, t); err != nil {
		return models.Tenant{}, err
	}
	var existing models.Tenant
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", t.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tenant{}, ErrNotFound
		}
		return models.Tenant{}, fmt.Errorf("update tenant: %w", err)
	}
	t.Seq = existing.Seq
	t.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return models.Tenant{}, fmt.Errorf("update tenant: %w", err)
	}
	return t, nil
}

// Delete removes the tenant with the matching id. Admin only; payments and
// invoices referencing the tenant are left in place.
func (s *Tenants) Delete(ctx context.Context, id string) error {
	if err := s.authz.Authorize(ctx, gate.ActionDelete, policy.ResourceTenant, nil); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.Tenant{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete tenant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Tenants) validate(ctx context.Context, t models.Tenant) error {
	v := validation.Violations{}
	validation.Required("name", t.Name, v)
	validation.Required("email", t.Email, v)
	validation.Required("propertyId", t.PropertyID, v)
	validation.OneOf("status", string(t.Status), v,
		string(models.TenancyActive), string(models.TenancyInactive),
		string(models.TenancyPending))
	validation.NonNegativeCents("rentAmount", t.RentCents, v)
	validation.NonNegativeCents("depositAmount", t.DepositCents, v)
	validation.NotBefore("leaseEnd", t.LeaseEnd, t.LeaseStart, v)
	if _, seen := v["propertyId"]; !seen {
		ok, err := recordExists(ctx, s.db, &models.Property{}, t.PropertyID)
		if err != nil {
			return fmt.Errorf("check property reference: %w", err)
		}
		if !ok {
			v["propertyId"] = "unknown_reference"
		}
	}
	return violationsErr(v)
}
