package models

import (
	"time"
)

// Service represents a sellable design offering defined by the admin
type Service struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	AdminID          uint      `gorm:"not null;index" json:"admin_id"` // foreign key to users table
	Name             string    `gorm:"not null" json:"name"`
	Category         string    `gorm:"not null" json:"category"` // stored lowercased and trimmed
	Description      string    `gorm:"type:text;not null" json:"description"`
	PriceStart       float64   `gorm:"not null" json:"price_start"`
	DurationEstimate string    `json:"duration_estimate"`         // free text, e.g. "2-4 minggu"
	Features         string    `gorm:"type:text" json:"features"` // newline-delimited feature list
	ImagePath        *string   `json:"image_path"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
