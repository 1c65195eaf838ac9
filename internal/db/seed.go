package db

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentdesk/rentdesk/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Seed inserts the demo dataset: three accounts (one admin, two tenants) and
// the properties, tenants, payments, and invoices they manage. Seeding is
// skipped when accounts already exist, so it is safe to call on every start.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: "1", Email: "admin@rental.com", Role: models.RoleAdmin, DisplayName: "Admin User"}, "admin123"},
		{models.User{ID: "2", Email: "john@email.com", Role: models.RoleTenant, DisplayName: "John Smith", TenantID: "1"}, "tenant123"},
		{models.User{ID: "3", Email: "jane@email.com", Role: models.RoleTenant, DisplayName: "Jane Doe", TenantID: "2"}, "tenant123"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.user.Email, err)
		}
		u.user.PasswordHash = string(hash)
		if err := db.Create(&u.user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.user.Email, err)
		}
	}

	properties := []models.Property{
		{
			ID: "1", Seq: 1,
			Name:             "Sunset Apartments Unit 101",
			Address:          "123 Main St, Unit 101, City, State 12345",
			Type:             models.PropertyApartment,
			Bedrooms:         2,
			Bathrooms:        1,
			MonthlyRentCents: 120000,
			Status:           models.OccupancyOccupied,
			Description:      "Beautiful 2-bedroom apartment with modern amenities",
			Amenities:        []string{"Parking", "Gym", "Pool", "Laundry"},
		},
		{
			ID: "2", Seq: 2,
			Name:             "Oak Street House",
			Address:          "456 Oak St, City, State 12345",
			Type:             models.PropertyHouse,
			Bedrooms:         3,
			Bathrooms:        2,
			MonthlyRentCents: 180000,
			Status:           models.OccupancyOccupied,
			Description:      "Spacious family home with backyard",
			Amenities:        []string{"Garage", "Garden", "Fireplace"},
		},
		{
			ID: "3", Seq: 3,
			Name:             "Downtown Loft",
			Address:          "789 Central Ave, Unit 504, City, State 12345",
			Type:             models.PropertyCondo,
			Bedrooms:         1,
			Bathrooms:        1,
			MonthlyRentCents: 150000,
			Status:           models.OccupancyVacant,
			Description:      "Modern loft in the heart of downtown",
			Amenities:        []string{"Balcony", "City View", "Concierge"},
		},
	}
	for i := range properties {
		if err := db.Create(&properties[i]).Error; err != nil {
			return fmt.Errorf("seed property %s: %w", properties[i].ID, err)
		}
	}

	tenants := []models.Tenant{
		{
			ID: "1", Seq: 1,
			Name:         "John Smith",
			Email:        "john@email.com",
			Phone:        "(555) 123-4567",
			PropertyID:   "1",
			LeaseStart:   date(2024, time.January, 1),
			LeaseEnd:     date(2024, time.December, 31),
			RentCents:    120000,
			DepositCents: 240000,
			Status:       models.TenancyActive,
		},
		{
			ID: "2", Seq: 2,
			Name:         "Jane Doe",
			Email:        "jane@email.com",
			Phone:        "(555) 987-6543",
			PropertyID:   "2",
			LeaseStart:   date(2024, time.March, 1),
			LeaseEnd:     date(2025, time.February, 28),
			RentCents:    180000,
			DepositCents: 360000,
			Status:       models.TenancyActive,
		},
	}
	for i := range tenants {
		if err := db.Create(&tenants[i]).Error; err != nil {
			return fmt.Errorf("seed tenant %s: %w", tenants[i].ID, err)
		}
	}

	payments := []models.Payment{
		{
			ID: "1", Seq: 1,
			TenantID: "1", PropertyID: "1",
			AmountCents: 120000,
			DueDate:     date(2024, time.January, 1),
			PaidDate:    datePtr(2024, time.January, 1),
			Status:      models.StatusPaid,
			Type:        models.PaymentRent,
			Description: "January 2024 Rent",
		},
		{
			ID: "2", Seq: 2,
			TenantID: "1", PropertyID: "1",
			AmountCents: 120000,
			DueDate:     date(2024, time.February, 1),
			Status:      models.StatusOverdue,
			Type:        models.PaymentRent,
			Description: "February 2024 Rent",
		},
		{
			ID: "3", Seq: 3,
			TenantID: "2", PropertyID: "2",
			AmountCents: 180000,
			DueDate:     date(2024, time.January, 1),
			PaidDate:    datePtr(2024, time.January, 1),
			Status:      models.StatusPaid,
			Type:        models.PaymentRent,
			Description: "January 2024 Rent",
		},
	}
	for i := range payments {
		if err := db.Create(&payments[i]).Error; err != nil {
			return fmt.Errorf("seed payment %s: %w", payments[i].ID, err)
		}
	}

	invoices := []models.Invoice{
		{
			ID: "1", Seq: 1,
			TenantID: "1", PropertyID: "1",
			AmountCents: 120000,
			IssueDate:   date(2024, time.February, 15),
			DueDate:     date(2024, time.March, 1),
			Status:      models.StatusPending,
			Items: []models.InvoiceItem{
				{Position: 0, Description: "Monthly Rent - March 2024", AmountCents: 120000},
			},
		},
		{
			ID: "2", Seq: 2,
			TenantID: "2", PropertyID: "2",
			AmountCents: 185000,
			IssueDate:   date(2024, time.February, 15),
			DueDate:     date(2024, time.March, 1),
			Status:      models.StatusPending,
			Items: []models.InvoiceItem{
				{Position: 0, Description: "Monthly Rent - March 2024", AmountCents: 180000},
				{Position: 1, Description: "Late Fee", AmountCents: 5000},
			},
		},
	}
	for i := range invoices {
		if err := db.Create(&invoices[i]).Error; err != nil {
			return fmt.Errorf("seed invoice %s: %w", invoices[i].ID, err)
		}
	}
	return nil
}
