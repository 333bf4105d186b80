package viewstate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/repository"
	"github.com/fespace-studio/fespace/store"
)

// AdminState is the state holder behind the admin dashboard. It keeps one
// always-live subscription per list for the screen's lifetime and owns the
// composite order filter.
type AdminState struct {
	ctx    context.Context
	cancel context.CancelFunc

	portfolios *repository.PortfolioRepository
	services   *repository.ServiceRepository
	orders     *repository.OrderRepository
	users      *repository.UserRepository
	documents  *repository.OrderDocumentRepository

	// AllowStatusOverride lets the admin apply any workflow status regardless
	// of the current one, instead of following the linear workflow.
	AllowStatusOverride bool

	serviceList   *Live[[]models.Service]
	portfolioList *Live[[]models.Portfolio]
	orderList     *Live[[]models.Order]
	clientList    *Live[[]models.User]
	clientCount   *Live[int64]

	filterMu         sync.RWMutex
	filterStatus     *models.OrderStatus
	filterClientName *string
	filterStartDate  *time.Time
	filterEndDate    *time.Time

	*notices
}

// NewAdminState wires the admin dashboard against the repositories. Call
// Close when the screen is discarded to tear down every subscription.
func NewAdminState(
	portfolios *repository.PortfolioRepository,
	services *repository.ServiceRepository,
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	documents *repository.OrderDocumentRepository,
) *AdminState {
	ctx, cancel := context.WithCancel(context.Background())
	s := &AdminState{
		ctx:        ctx,
		cancel:     cancel,
		portfolios: portfolios,
		services:   services,
		orders:     orders,
		users:      users,
		documents:  documents,
		notices:    newNotices(),
	}
	s.serviceList = newLive(nil, func() <-chan []models.Service { return services.GetAllServices(ctx) })
	s.portfolioList = newLive(nil, func() <-chan []models.Portfolio { return portfolios.GetAllPortfolio(ctx) })
	s.orderList = newLive(nil, func() <-chan []models.Order { return orders.GetAllOrders(ctx) })
	s.clientList = newLive(nil, func() <-chan []models.User { return users.GetAllClients(ctx) })
	s.clientCount = newLive(0, func() <-chan int64 { return users.GetClientCount(ctx) })
	return s
}

// Close cancels every subscription the holder owns.
func (s *AdminState) Close() {
	s.cancel()
}

// Services is the live list of all services.
func (s *AdminState) Services() []models.Service { return s.serviceList.Get() }

// Portfolios is the live list of all portfolio items.
func (s *AdminState) Portfolios() []models.Portfolio { return s.portfolioList.Get() }

// Orders is the live, unfiltered order list.
func (s *AdminState) Orders() []models.Order { return s.orderList.Get() }

// Clients is the live list of registered clients.
func (s *AdminState) Clients() []models.User { return s.clientList.Get() }

// ClientCount is the live number of registered clients.
func (s *AdminState) ClientCount() int64 { return s.clientCount.Get() }

// --- order filter ---

// SetStatusFilter narrows the filtered order view to one status; nil clears.
func (s *AdminState) SetStatusFilter(status *models.OrderStatus) {
	s.filterMu.Lock()
	s.filterStatus = status
	s.filterMu.Unlock()
}

// SetClientNameFilter narrows the filtered view to orders whose client name
// contains the given substring, case-insensitively; nil clears.
func (s *AdminState) SetClientNameFilter(name *string) {
	s.filterMu.Lock()
	s.filterClientName = name
	s.filterMu.Unlock()
}

// SetDateRangeFilter narrows the filtered view to orders created inside the
// inclusive range; either bound may be nil.
func (s *AdminState) SetDateRangeFilter(start, end *time.Time) {
	s.filterMu.Lock()
	s.filterStartDate = start
	s.filterEndDate = end
	s.filterMu.Unlock()
}

// FilteredOrders derives the filtered order view from the live order list and
// the current filter settings. The client-name predicate resolves each
// order's client with a secondary point lookup.
func (s *AdminState) FilteredOrders() []models.Order {
	all := s.orderList.Get()

	s.filterMu.RLock()
	status := s.filterStatus
	clientName := s.filterClientName
	start := s.filterStartDate
	end := s.filterEndDate
	s.filterMu.RUnlock()

	filtered := make([]models.Order, 0, len(all))
	for _, order := range all {
		if status != nil && order.Status != *status {
			continue
		}
		if start != nil && order.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && order.CreatedAt.After(*end) {
			continue
		}
		if clientName != nil && strings.TrimSpace(*clientName) != "" {
			client, err := s.users.GetUserByID(order.ClientID)
			if err != nil {
				s.fail("Failed to load client for order filter", err)
				continue
			}
			if client == nil || !strings.Contains(
				strings.ToLower(client.Name), strings.ToLower(*clientName)) {
				continue
			}
		}
		filtered = append(filtered, order)
	}
	return filtered
}

// --- services ---

// AddService creates a service owned by the admin. The category is stored
// lowercased and trimmed.
func (s *AdminState) AddService(name, category, description string, price float64, duration, features string, imagePath *string, adminID uint) {
	service := models.Service{
		AdminID:          adminID,
		Name:             name,
		Category:         strings.ToLower(strings.TrimSpace(category)),
		Description:      description,
		PriceStart:       price,
		DurationEstimate: duration,
		Features:         features,
		ImagePath:        imagePath,
	}
	if err := s.services.AddService(&service); err != nil {
		s.fail("Failed to add service", err)
	}
}

// UpdateService replaces the stored service with the given record.
func (s *AdminState) UpdateService(service *models.Service) {
	if err := s.services.UpdateService(service); err != nil {
		s.fail("Failed to update service", err)
	}
}

// DeleteService removes a service.
func (s *AdminState) DeleteService(service *models.Service) {
	if err := s.services.DeleteService(service); err != nil {
		s.fail("Failed to delete service", err)
	}
}

// --- portfolio ---

// AddPortfolio creates a portfolio item owned by the admin.
func (s *AdminState) AddPortfolio(title, description, category string, year int, imagePath *string, adminID uint) {
	portfolio := models.Portfolio{
		AdminID:     adminID,
		Title:       title,
		Description: description,
		Category:    category,
		Year:        year,
		ImagePath:   imagePath,
	}
	if err := s.portfolios.Insert(&portfolio); err != nil {
		s.fail("Failed to add portfolio item", err)
	}
}

// UpdatePortfolio replaces the stored portfolio item with the given record.
func (s *AdminState) UpdatePortfolio(portfolio *models.Portfolio) {
	if err := s.portfolios.Update(portfolio); err != nil {
		s.fail("Failed to update portfolio item", err)
	}
}

// DeletePortfolio removes a portfolio item.
func (s *AdminState) DeletePortfolio(portfolio *models.Portfolio) {
	if err := s.portfolios.Delete(portfolio); err != nil {
		s.fail("Failed to delete portfolio item", err)
	}
}

// --- orders ---

// GetOrderByID is a live lookup of one order.
func (s *AdminState) GetOrderByID(orderID uint) *Live[*models.Order] {
	return newLive[*models.Order](nil, func() <-chan *models.Order {
		return s.orders.GetOrderByIDLive(s.ctx, orderID)
	})
}

// UpdateOrderStatus applies a workflow transition as a full-record replace:
// the existing order is copied, status and UpdatedAt are overwritten, and the
// row is persisted. Illegal transitions are refused unless
// AllowStatusOverride is set.
func (s *AdminState) UpdateOrderStatus(order *models.Order, newStatus models.OrderStatus) {
	if !newStatus.Valid() {
		s.push(fmt.Sprintf("Unknown order status %q", newStatus))
		return
	}
	if !s.AllowStatusOverride && !order.Status.CanTransitionTo(newStatus) {
		s.push(fmt.Sprintf("Cannot move order from %q to %q", order.Status, newStatus))
		return
	}

	updated := *order
	updated.Status = newStatus
	updated.UpdatedAt = time.Now()
	if err := s.orders.Update(&updated); err != nil {
		s.fail("Failed to update order status", err)
	}
}

// UploadDesign records a validated design file against the order: the
// order's design path is set and a design_draft document is appended, both in
// one transaction. The upload is attributed to the acting admin.
func (s *AdminState) UploadDesign(order *models.Order, designPath string, adminID uint) {
	updated := *order
	updated.DesignPath = &designPath
	updated.UpdatedAt = time.Now()

	description := fmt.Sprintf("Design result from admin for order #%d", order.ID)
	document := models.OrderDocument{
		OrderID:     order.ID,
		UploadedBy:  adminID,
		FilePath:    designPath,
		FileName:    filepath.Base(designPath),
		DocType:     models.DocDesignDraft,
		Description: &description,
	}

	if err := s.orders.UpdateWithDocument(&updated, &document); err != nil {
		s.fail("Failed to upload design", err)
	}
}

// DeleteOrder removes an order.
func (s *AdminState) DeleteOrder(order *models.Order) {
	if err := s.orders.Delete(order); err != nil {
		s.fail("Failed to delete order", err)
	}
}

// --- users ---

// GetClientByID is a live lookup of one client account.
func (s *AdminState) GetClientByID(clientID uint) *Live[*models.User] {
	return newLive[*models.User](nil, func() <-chan *models.User {
		return s.users.GetUserByIDLive(s.ctx, clientID)
	})
}

// AdminProfile is a live lookup of the built-in admin account, resolved by
// its fixed email.
func (s *AdminState) AdminProfile() *Live[*models.User] {
	return newLive[*models.User](nil, func() <-chan *models.User {
		return s.users.GetUserByEmailLive(s.ctx, store.SeedAdminEmail)
	})
}

// UpdateAdminProfile replaces the stored admin account with the given record.
func (s *AdminState) UpdateAdminProfile(user *models.User) {
	if err := s.users.Update(user); err != nil {
		s.fail("Failed to update profile", err)
	}
}

// --- documents ---

// GetOrderDocuments is a live list of every document attached to an order.
func (s *AdminState) GetOrderDocuments(orderID uint) *Live[[]models.OrderDocument] {
	return newLive(nil, func() <-chan []models.OrderDocument {
		return s.documents.GetDocumentsByOrder(s.ctx, orderID)
	})
}

// GetOrderDocumentsByType is a live list of an order's documents of one type.
func (s *AdminState) GetOrderDocumentsByType(orderID uint, docType models.DocType) *Live[[]models.OrderDocument] {
	return newLive(nil, func() <-chan []models.OrderDocument {
		return s.documents.GetDocumentsByType(s.ctx, orderID, docType)
	})
}

// UploadDocument attaches a file to an order.
func (s *AdminState) UploadDocument(orderID, uploadedBy uint, filePath, fileName string, docType models.DocType, description *string) {
	if err := s.documents.UploadDocument(orderID, uploadedBy, filePath, fileName, docType, description); err != nil {
		s.fail("Failed to upload document", err)
	}
}

// DeleteDocument removes an attached file record.
func (s *AdminState) DeleteDocument(document *models.OrderDocument) {
	if err := s.documents.Delete(document); err != nil {
		s.fail("Failed to delete document", err)
	}
}
