package viewstate

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/repository"
)

// ClientState is the state holder behind the client screens: the browsable
// portfolio and service catalogs, the client's own orders, and checkout.
type ClientState struct {
	ctx    context.Context
	cancel context.CancelFunc

	portfolios *repository.PortfolioRepository
	services   *repository.ServiceRepository
	orders     *repository.OrderRepository
	documents  *repository.OrderDocumentRepository

	portfolioList *Live[[]models.Portfolio]
	serviceList   *Live[[]models.Service]

	*notices
}

// NewClientState wires the client screens against the repositories. Call
// Close when the screen is discarded.
func NewClientState(
	portfolios *repository.PortfolioRepository,
	services *repository.ServiceRepository,
	orders *repository.OrderRepository,
	documents *repository.OrderDocumentRepository,
) *ClientState {
	ctx, cancel := context.WithCancel(context.Background())
	s := &ClientState{
		ctx:        ctx,
		cancel:     cancel,
		portfolios: portfolios,
		services:   services,
		orders:     orders,
		documents:  documents,
		notices:    newNotices(),
	}
	s.portfolioList = newLive(nil, func() <-chan []models.Portfolio { return portfolios.GetAllPortfolio(ctx) })
	s.serviceList = newLive(nil, func() <-chan []models.Service { return services.GetAllServices(ctx) })
	return s
}

// Close cancels every subscription the holder owns.
func (s *ClientState) Close() {
	s.cancel()
}

// Portfolios is the live list of all portfolio items.
func (s *ClientState) Portfolios() []models.Portfolio { return s.portfolioList.Get() }

// Services is the live list of all services.
func (s *ClientState) Services() []models.Service { return s.serviceList.Get() }

// OrdersByClient is a live list of the client's own orders.
func (s *ClientState) OrdersByClient(clientID uint) *Live[[]models.Order] {
	return newLive(nil, func() <-chan []models.Order {
		return s.orders.GetOrdersByClient(s.ctx, clientID)
	})
}

// CreateOrder places a new order at checkout. Every order starts pending.
func (s *ClientState) CreateOrder(clientID, adminID, serviceID uint, locationAddress string, budget float64) {
	now := time.Now()
	order := models.Order{
		ClientID:        clientID,
		AdminID:         adminID,
		ServiceID:       serviceID,
		LocationAddress: locationAddress,
		Budget:          budget,
		Status:          models.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Insert(&order); err != nil {
		s.fail("Failed to create order", err)
	}
}

// UploadDocument attaches a client-submitted file to the order: the order's
// document path is set and a client_document row is appended, both in one
// transaction.
func (s *ClientState) UploadDocument(order *models.Order, filePath string, clientID uint, description *string) {
	updated := *order
	updated.DocumentPath = &filePath
	updated.UpdatedAt = time.Now()

	document := models.OrderDocument{
		OrderID:     order.ID,
		UploadedBy:  clientID,
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		DocType:     models.DocClientDocument,
		Description: description,
	}

	if err := s.orders.UpdateWithDocument(&updated, &document); err != nil {
		s.fail("Failed to upload document", err)
	}
}

// GetOrderDocuments is a live list of every document attached to an order.
func (s *ClientState) GetOrderDocuments(orderID uint) *Live[[]models.OrderDocument] {
	return newLive(nil, func() <-chan []models.OrderDocument {
		return s.documents.GetDocumentsByOrder(s.ctx, orderID)
	})
}
