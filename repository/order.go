package repository

import (
	"context"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/store"
)

// OrderRepository wraps the order access layer.
type OrderRepository struct {
	store *store.Store
}

func NewOrderRepository(s *store.Store) *OrderRepository {
	return &OrderRepository{store: s}
}

func (r *OrderRepository) Insert(order *models.Order) error {
	return r.store.InsertOrder(order)
}

func (r *OrderRepository) Update(order *models.Order) error {
	return r.store.UpdateOrder(order)
}

func (r *OrderRepository) Delete(order *models.Order) error {
	return r.store.DeleteOrder(order)
}

func (r *OrderRepository) GetOrderByID(id uint) (*models.Order, error) {
	return r.store.GetOrderByID(id)
}

// UpdateWithDocument persists an order together with a new attached document;
// the two writes share one transaction.
func (r *OrderRepository) UpdateWithDocument(order *models.Order, document *models.OrderDocument) error {
	return r.store.UpdateOrderWithDocument(order, document)
}

func (r *OrderRepository) GetAllOrders(ctx context.Context) <-chan []models.Order {
	return r.store.WatchOrders(ctx)
}

func (r *OrderRepository) GetOrdersByClient(ctx context.Context, clientID uint) <-chan []models.Order {
	return r.store.WatchOrdersByClient(ctx, clientID)
}

func (r *OrderRepository) GetOrdersByAdmin(ctx context.Context, adminID uint) <-chan []models.Order {
	return r.store.WatchOrdersByAdmin(ctx, adminID)
}

func (r *OrderRepository) GetOrdersByStatus(ctx context.Context, status models.OrderStatus) <-chan []models.Order {
	return r.store.WatchOrdersByStatus(ctx, status)
}

func (r *OrderRepository) GetOrderByIDLive(ctx context.Context, id uint) <-chan *models.Order {
	return r.store.WatchOrderByID(ctx, id)
}
