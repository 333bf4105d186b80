package models

import (
	"time"
)

// Role identifies which side of the marketplace a user belongs to.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User represents an account in the system (the service-provider admin or a client)
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"index;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"` // stored in plaintext for parity with the mobile app; known defect
	Role           Role      `gorm:"not null;default:'client'" json:"role"`
	WhatsappNumber *string   `json:"whatsapp_number"` // normalized +62 format, nullable
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
