package models

import "time"

// Invoice bills a tenant for one or more line items. AmountCents is always
// the sum of the item amounts and is recomputed on create; IssueDate never
// comes after DueDate.
type Invoice struct {
	ID          string `gorm:"primaryKey;size:32"`
	Seq         int64  `gorm:"not null;uniqueIndex"`
	TenantID    string `gorm:"not null;size:32;index"`
	PropertyID  string `gorm:"not null;size:32;index"`
	AmountCents int64  `gorm:"not null"`
	IssueDate   time.Time
	DueDate     time.Time
	Status      BillingStatus `gorm:"not null;size:16"`
	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvoiceItem is one line of an invoice. Position preserves the authored
// item order.
type InvoiceItem struct {
	ID          uint   `gorm:"primaryKey"`
	InvoiceID   string `gorm:"not null;size:32;index"`
	Position    int    `gorm:"not null"`
	Description string `gorm:"not null"`
	AmountCents int64  `gorm:"not null"`
}

// OwnerTenantID makes an invoice visible to the tenant it bills.
func (i Invoice) OwnerTenantID() string { return i.TenantID }

// Total sums the line item amounts.
func (i Invoice) Total() int64 {
	var total int64
	for _, it := range i.Items {
		total += it.AmountCents
	}
	return total
}
