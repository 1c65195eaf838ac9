package models

import "time"

// User is a credential row: who may log in, with which role, and for tenant
// accounts which Tenant record they are linked to. Passwords are stored as
// bcrypt hashes.
type User struct {
	ID           string `gorm:"primaryKey;size:32"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"not null;size:16"`
	DisplayName  string `gorm:"not null"`
	TenantID     string `gorm:"size:32"` // set only for tenant accounts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity builds the session identity for this user.
func (u User) Identity() Identity {
	return Identity{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		TenantID:    u.TenantID,
	}
}
