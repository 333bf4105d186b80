package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fespace-studio/fespace/models"
)

// InsertDocument persists an order document, replacing any existing row with
// the same id.
func (s *Store) InsertDocument(document *models.OrderDocument) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(document).Error; err != nil {
		return err
	}
	s.watcher.notify(models.OrderDocument{}.TableName())
	return nil
}

// DeleteDocument removes the row keyed by the document's id.
func (s *Store) DeleteDocument(document *models.OrderDocument) error {
	if err := s.db.Delete(&models.OrderDocument{}, document.ID).Error; err != nil {
		return err
	}
	s.watcher.notify(models.OrderDocument{}.TableName())
	return nil
}

// GetDocumentByID fetches a single document. A missing row returns (nil, nil).
func (s *Store) GetDocumentByID(id uint) (*models.OrderDocument, error) {
	var document models.OrderDocument
	err := s.db.First(&document, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// ListDocumentsByOrder returns every document attached to an order, most
// recently uploaded first.
func (s *Store) ListDocumentsByOrder(orderID uint) ([]models.OrderDocument, error) {
	var documents []models.OrderDocument
	err := s.db.Where("order_id = ?", orderID).Order("uploaded_at desc").Find(&documents).Error
	return documents, err
}

// WatchDocumentsByOrder is a live list of an order's documents, most recently
// uploaded first.
func (s *Store) WatchDocumentsByOrder(ctx context.Context, orderID uint) <-chan []models.OrderDocument {
	return watchQuery(ctx, s.watcher, models.OrderDocument{}.TableName(), func() ([]models.OrderDocument, error) {
		return s.ListDocumentsByOrder(orderID)
	})
}

// WatchDocumentsByType is a live list of an order's documents narrowed to one
// document type.
func (s *Store) WatchDocumentsByType(ctx context.Context, orderID uint, docType models.DocType) <-chan []models.OrderDocument {
	return watchQuery(ctx, s.watcher, models.OrderDocument{}.TableName(), func() ([]models.OrderDocument, error) {
		var documents []models.OrderDocument
		err := s.db.Where("order_id = ? AND doc_type = ?", orderID, docType).
			Order("uploaded_at desc").Find(&documents).Error
		return documents, err
	})
}
