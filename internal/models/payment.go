package models

import "time"

// BillingStatus is shared by payments and invoices.
type BillingStatus string

const (
	StatusPaid    BillingStatus = "paid"
	StatusPending BillingStatus = "pending"
	StatusOverdue BillingStatus = "overdue"
)

// PaymentType distinguishes what a payment is for.
type PaymentType string

const (
	PaymentRent    PaymentType = "rent"
	PaymentDeposit PaymentType = "deposit"
	PaymentFee     PaymentType = "fee"
)

// Payment records money owed or received for a tenancy. PaidDate is set iff
// Status is StatusPaid. TenantID and PropertyID are weak references.
type Payment struct {
	ID          string `gorm:"primaryKey;size:32"`
	Seq         int64  `gorm:"not null;uniqueIndex"`
	TenantID    string `gorm:"not null;size:32;index"`
	PropertyID  string `gorm:"not null;size:32;index"`
	AmountCents int64  `gorm:"not null"`
	DueDate     time.Time
	PaidDate    *time.Time
	Status      BillingStatus `gorm:"not null;size:16"`
	Type        PaymentType   `gorm:"not null;size:16"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerTenantID makes a payment visible to the tenant it belongs to.
func (p Payment) OwnerTenantID() string { return p.TenantID }
