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

// Properties is the property collection.
type Properties struct {
	db    *gorm.DB
	authz *policy.Authorizer
	ids   *counter
}

func NewProperties(db *gorm.DB, authz *policy.Authorizer) (*Properties, error) {
	ids, err := newCounter(db, &models.Property{})
	if err != nil {
		return nil, err
	}
	return &Properties{db: db, authz: authz, ids: ids}, nil
}

// List returns the properties visible to the caller in insertion order.
// Both roles see the full collection; tenants read it as reference data.
func (s *Properties) List(ctx context.Context) ([]models.Property, error) {
	if err := s.authz.Authorize(ctx, gate.ActionList, policy.ResourceProperty, nil); err != nil {
		return nil, err
	}
	var items []models.Property
	if err := s.db.WithContext(ctx).Order("seq").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return s.authz.VisibleProperties(ctx, items), nil
}

// Get returns one property. Ids that do not exist, or that the caller may
// not see, both come back as ErrNotFound.
func (s *Properties) Get(ctx context.Context, id string) (models.Property, error) {
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourceProperty, nil); err != nil {
		return models.Property{}, err
	}
	var p models.Property
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Property{}, ErrNotFound
		}
		return models.Property{}, fmt.Errorf("get property: %w", err)
	}
	if err := s.authz.Authorize(ctx, gate.ActionView, policy.ResourceProperty, p); err != nil {
		return models.Property{}, ErrNotFound
	}
	return p, nil
}

// Create assigns a fresh id and stores the property. Admin only.
func (s *Properties) Create(ctx context.Context, p models.Property) (models.Property, error) {
	if err := s.authz.Authorize(ctx, gate.ActionCreate, policy.ResourceProperty, nil); err != nil {
		return models.Property{}, err
	}
	if err := s.validate(p); err != nil {
		return models.Property{}, err
	}
	p.ID, p.Seq = s.ids.next()
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Property{}, fmt.Errorf("create property: %w", err)
	}
	return p, nil
}

// Update replaces the property with the matching id. Admin only; an absent
// id is an ErrNotFound, not a silent no-op.
func (s *Properties) Update(ctx context.Context, p models.Property) (models.Property, error) {
	if err := s.authz.Authorize(ctx, gate.ActionUpdate, policy.ResourceProperty, nil); err != nil {
		return models.Property{}, err
	}
	if err := s.validate(p); err != nil {
		return models.Property{}, err
	}
	var existing models.Property
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Property{}, ErrNotFound
		}
		return models.Property{}, fmt.Errorf("update property: %w", err)
	}
	p.Seq = existing.Seq
	p.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Property{}, fmt.Errorf("update property: %w", err)
	}
	return p, nil
}

// Delete removes the property with the matching id. Admin only. References
// from tenants, payments, and invoices are weak and are left dangling.
func (s *Properties) Delete(ctx context.Context, id string) error {
	if err := s.authz.Authorize(ctx, gate.ActionDelete, policy.ResourceProperty, nil); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete property: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Properties) validate(p models.Property) error {
	v := validation.Violations{}
	validation.Required("name", p.Name, v)
	validation.Required("address", p.Address, v)
	validation.OneOf("type", string(p.Type), v,
		string(models.PropertyApartment), string(models.PropertyHouse),
		string(models.PropertyCondo), string(models.PropertyCommercial))
	validation.OneOf("status", string(p.Status), v,
		string(models.OccupancyVacant), string(models.OccupancyOccupied),
		string(models.OccupancyMaintenance))
	validation.NonNegativeInt("bedrooms", p.Bedrooms, v)
	validation.NonNegativeInt("bathrooms", p.Bathrooms, v)
	validation.NonNegativeCents("monthlyRent", p.MonthlyRentCents, v)
	return violationsErr(v)
}
