package repository

import (
	"context"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/store"
)

// OrderDocumentRepository wraps the order-document access layer.
type OrderDocumentRepository struct {
	store *store.Store
}

func NewOrderDocumentRepository(s *store.Store) *OrderDocumentRepository {
	return &OrderDocumentRepository{store: s}
}

func (r *OrderDocumentRepository) Insert(document *models.OrderDocument) error {
	return r.store.InsertDocument(document)
}

func (r *OrderDocumentRepository) Delete(document *models.OrderDocument) error {
	return r.store.DeleteDocument(document)
}

// UploadDocument composes a document record from its parts and inserts it.
func (r *OrderDocumentRepository) UploadDocument(orderID, uploadedBy uint, filePath, fileName string, docType models.DocType, description *string) error {
	document := models.OrderDocument{
		OrderID:     orderID,
		UploadedBy:  uploadedBy,
		FilePath:    filePath,
		FileName:    fileName,
		DocType:     docType,
		Description: description,
	}
	return r.store.InsertDocument(&document)
}

func (r *OrderDocumentRepository) GetDocumentsByOrder(ctx context.Context, orderID uint) <-chan []models.OrderDocument {
	return r.store.WatchDocumentsByOrder(ctx, orderID)
}

func (r *OrderDocumentRepository) GetDocumentsByType(ctx context.Context, orderID uint, docType models.DocType) <-chan []models.OrderDocument {
	return r.store.WatchDocumentsByType(ctx, orderID, docType)
}
