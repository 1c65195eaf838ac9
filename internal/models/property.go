package models

import "time"

// PropertyType classifies a rental property.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCondo      PropertyType = "condo"
	PropertyCommercial PropertyType = "commercial"
)

// OccupancyStatus is the current occupancy state of a property.
type OccupancyStatus string

const (
	OccupancyVacant      OccupancyStatus = "vacant"
	OccupancyOccupied    OccupancyStatus = "occupied"
	OccupancyMaintenance OccupancyStatus = "maintenance"
)

// Property is a rental unit. IDs are decimal strings assigned from a
// monotonic counter; Seq carries the insertion order so listings stay
// order-preserving without casting string ids in SQL. All monetary amounts
// are integer cents.
type Property struct {
	ID               string          `gorm:"primaryKey;size:32"`
	Seq              int64           `gorm:"not null;uniqueIndex"`
	Name             string          `gorm:"not null;index"`
	Address          string          `gorm:"not null"`
	Type             PropertyType    `gorm:"not null;size:16"`
	Bedrooms         int             `gorm:"not null"`
	Bathrooms        int             `gorm:"not null"`
	MonthlyRentCents int64           `gorm:"not null"`
	Status           OccupancyStatus `gorm:"not null;size:16"`
	Description      string
	Amenities        []string `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
