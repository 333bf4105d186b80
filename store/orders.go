package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fespace-studio/fespace/models"
)

// InsertOrder persists an order, replacing any existing row with the same id.
func (s *Store) InsertOrder(order *models.Order) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(order).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Order{}.TableName())
	return nil
}

// UpdateOrder replaces the full row keyed by the order's id. There is no
// partial update; callers copy the existing record and overwrite fields.
func (s *Store) UpdateOrder(order *models.Order) error {
	if err := s.db.Save(order).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Order{}.TableName())
	return nil
}

// DeleteOrder removes the row keyed by the order's id.
func (s *Store) DeleteOrder(order *models.Order) error {
	if err := s.db.Delete(&models.Order{}, order.ID).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Order{}.TableName())
	return nil
}

// GetOrderByID fetches a single order. A missing row returns (nil, nil).
func (s *Store) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns every order, newest first.
func (s *Store) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// UpdateOrderWithDocument saves an order together with a new attached
// document in one transaction, so a failed document insert also rolls the
// order back. Both the admin design upload and the client document upload go
// through here.
func (s *Store) UpdateOrderWithDocument(order *models.Order, document *models.OrderDocument) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}
		return tx.Create(document).Error
	})
	if err != nil {
		return err
	}
	s.watcher.notify(models.Order{}.TableName(), models.OrderDocument{}.TableName())
	return nil
}

// WatchOrders is a live list of every order, newest first.
func (s *Store) WatchOrders(ctx context.Context) <-chan []models.Order {
	return watchQuery(ctx, s.watcher, models.Order{}.TableName(), s.ListOrders)
}

// WatchOrdersByClient is a live list of one client's orders, newest first.
func (s *Store) WatchOrdersByClient(ctx context.Context, clientID uint) <-chan []models.Order {
	return watchQuery(ctx, s.watcher, models.Order{}.TableName(), func() ([]models.Order, error) {
		var orders []models.Order
		err := s.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&orders).Error
		return orders, err
	})
}

// WatchOrdersByAdmin is a live list of the orders assigned to one admin.
func (s *Store) WatchOrdersByAdmin(ctx context.Context, adminID uint) <-chan []models.Order {
	return watchQuery(ctx, s.watcher, models.Order{}.TableName(), func() ([]models.Order, error) {
		var orders []models.Order
		err := s.db.Where("admin_id = ?", adminID).Order("created_at desc").Find(&orders).Error
		return orders, err
	})
}

// WatchOrdersByStatus is a live list of orders currently in one status.
func (s *Store) WatchOrdersByStatus(ctx context.Context, status models.OrderStatus) <-chan []models.Order {
	return watchQuery(ctx, s.watcher, models.Order{}.TableName(), func() ([]models.Order, error) {
		var orders []models.Order
		err := s.db.Where("status = ?", status).Find(&orders).Error
		return orders, err
	})
}

// WatchOrderByID is a live lookup of a single order; emits nil while absent.
func (s *Store) WatchOrderByID(ctx context.Context, id uint) <-chan *models.Order {
	return watchQuery(ctx, s.watcher, models.Order{}.TableName(), func() (*models.Order, error) {
		return s.GetOrderByID(id)
	})
}
