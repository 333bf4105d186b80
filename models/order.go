package models

import (
	"time"
)

// OrderStatus tracks an order through the fulfillment workflow.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusSurvey    OrderStatus = "survey"
	StatusInDesign  OrderStatus = "indesign"
	StatusRevision  OrderStatus = "revision"
	StatusFinal     OrderStatus = "final"
	StatusCompleted OrderStatus = "completed"
	StatusRejected  OrderStatus = "rejected"
	StatusCancelled OrderStatus = "cancelled"
)

// nextStatus maps each workflow status to its linear successor.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:  StatusApproved,
	StatusApproved: StatusSurvey,
	StatusSurvey:   StatusInDesign,
	StatusInDesign: StatusRevision,
	StatusRevision: StatusFinal,
	StatusFinal:    StatusCompleted,
}

// AllStatuses lists every status the workflow recognizes, in workflow order.
var AllStatuses = []OrderStatus{
	StatusPending, StatusApproved, StatusSurvey, StatusInDesign,
	StatusRevision, StatusFinal, StatusCompleted, StatusRejected, StatusCancelled,
}

// Valid reports whether s is one of the enumerated workflow statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends the workflow.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next follows the workflow:
// one step forward along the linear chain, or into the rejected/cancelled
// branch from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	if next == StatusRejected || next == StatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

// Order represents a client's request for a design service
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	ClientID        uint        `gorm:"not null;index" json:"client_id"` // foreign key to users table
	AdminID         uint        `gorm:"not null;index" json:"admin_id"`  // foreign key to users table
	ServiceID       uint        `gorm:"not null;index" json:"service_id"`
	LocationAddress string      `gorm:"not null" json:"location_address"`
	Budget          float64     `gorm:"not null" json:"budget"`
	Status          OrderStatus `gorm:"not null;default:'pending'" json:"status"`
	DesignPath      *string     `json:"design_path"`   // set when the admin uploads a design result
	DocumentPath    *string     `json:"document_path"` // set when the client attaches a supporting document
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
