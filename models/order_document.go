package models

import (
	"time"
)

// DocType classifies a file attached to an order.
type DocType string

const (
	DocLocationPhoto  DocType = "location_photo"
	DocClientDocument DocType = "client_document"
	DocDesignDraft    DocType = "design_draft"
	DocFinalDesign    DocType = "final_design"
	DocOther          DocType = "other"
)

// Valid reports whether d is one of the enumerated document types.
func (d DocType) Valid() bool {
	switch d {
	case DocLocationPhoto, DocClientDocument, DocDesignDraft, DocFinalDesign, DocOther:
		return true
	}
	return false
}

// OrderDocument represents a file attached to an order by either party
type OrderDocument struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"` // foreign key to orders table
	UploadedBy  uint      `gorm:"not null;index" json:"uploaded_by"`
	FilePath    string    `gorm:"not null" json:"file_path"`
	FileName    string    `gorm:"not null" json:"file_name"`
	DocType     DocType   `gorm:"not null;default:'other'" json:"doc_type"`
	Description *string   `json:"description"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// TableName specifies the table name for the OrderDocument model
func (OrderDocument) TableName() string {
	return "order_documents"
}
