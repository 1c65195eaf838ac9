package models

import "time"

// TenancyStatus is the lease state of a tenant.
type TenancyStatus string

const (
	TenancyActive   TenancyStatus = "active"
	TenancyInactive TenancyStatus = "inactive"
	TenancyPending  TenancyStatus = "pending"
)

// Tenant is a leaseholder. PropertyID is a weak reference to a Property;
// it is validated at mutation time but deleting the property does not
// cascade.
type Tenant struct {
	ID           string `gorm:"primaryKey;size:32"`
	Seq          int64  `gorm:"not null;uniqueIndex"`
	Name         string `gorm:"not null;index"`
	Email        string `gorm:"not null"`
	Phone        string
	PropertyID   string        `gorm:"not null;size:32;index"`
	LeaseStart   time.Time     `gorm:"not null"`
	LeaseEnd     time.Time     `gorm:"not null"`
	RentCents    int64         `gorm:"not null"`
	DepositCents int64         `gorm:"not null"`
	Status       TenancyStatus `gorm:"not null;size:16"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerTenantID makes a tenant record visible to the tenant it describes.
func (t Tenant) OwnerTenantID() string { return t.ID }
