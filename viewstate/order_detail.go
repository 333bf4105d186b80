package viewstate

import (
	"context"
	"sync"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/repository"
)

// OrderDetailState composes two nested live lookups: the order by id, and —
// dependent on the order's client id — the client's user record. If the
// order's client id ever changes, the user subscription is torn down and
// re-established against the new id.
type OrderDetailState struct {
	ctx    context.Context
	cancel context.CancelFunc

	orders *repository.OrderRepository
	users  *repository.UserRepository

	mu     sync.RWMutex
	order  *models.Order
	client *models.User

	ready chan struct{} // closed after the first order emission
}

// NewOrderDetailState starts the nested subscription for one order. Call
// Close when the detail screen is discarded.
func NewOrderDetailState(orders *repository.OrderRepository, users *repository.UserRepository, orderID uint) *OrderDetailState {
	ctx, cancel := context.WithCancel(context.Background())
	s := &OrderDetailState{
		ctx:    ctx,
		cancel: cancel,
		orders: orders,
		users:  users,
		ready:  make(chan struct{}),
	}
	go s.run(orderID)
	return s
}

// Close tears down both subscriptions.
func (s *OrderDetailState) Close() {
	s.cancel()
}

// Order returns the current order snapshot, or nil while absent. The first
// call blocks until the initial lookup completes.
func (s *OrderDetailState) Order() *models.Order {
	<-s.ready
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order
}

// Client returns the order's client record, or nil while unresolved.
func (s *OrderDetailState) Client() *models.User {
	<-s.ready
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *OrderDetailState) run(orderID uint) {
	var (
		clientCtx    context.Context
		clientCancel context.CancelFunc
		clientID     uint
		first        = true
	)
	defer func() {
		if clientCancel != nil {
			clientCancel()
		}
	}()

	for order := range s.orders.GetOrderByIDLive(s.ctx, orderID) {
		s.mu.Lock()
		s.order = order
		s.mu.Unlock()

		// Re-subscribe the client lookup whenever the order's client changes.
		if order != nil && (clientCancel == nil || order.ClientID != clientID) {
			if clientCancel != nil {
				clientCancel()
			}
			clientID = order.ClientID
			clientCtx, clientCancel = context.WithCancel(s.ctx)
			go s.watchClient(clientCtx, clientID)
		}

		if first {
			first = false
			close(s.ready)
		}
	}
	if first {
		close(s.ready)
	}
}

func (s *OrderDetailState) watchClient(ctx context.Context, clientID uint) {
	for client := range s.users.GetUserByIDLive(ctx, clientID) {
		s.mu.Lock()
		s.client = client
		s.mu.Unlock()
	}
}
