package models

import (
	"time"
)

// Portfolio represents a showcase project entry managed by the admin
type Portfolio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdminID     uint      `gorm:"not null;index" json:"admin_id"` // foreign key to users table
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Year        int       `gorm:"not null" json:"year"`
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Portfolio model
func (Portfolio) TableName() string {
	return "portfolios"
}
