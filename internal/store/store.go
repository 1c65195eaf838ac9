// Package store implements the record collections (properties, tenants,
// payments, invoices) on top of gorm, with authorization checked
// on every operation and field validation on every mutation. Reads return
// only the records the caller's identity may see; mutations are admin-only.
package store

import (
	"context"

	"gorm.io/gorm"
)

func recordExists(ctx context.Context, db *gorm.DB, model any, id string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
