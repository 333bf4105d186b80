package repository

import (
	"context"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/store"
)

// PortfolioRepository wraps the portfolio access layer.
type PortfolioRepository struct {
	store *store.Store
}

func NewPortfolioRepository(s *store.Store) *PortfolioRepository {
	return &PortfolioRepository{store: s}
}

func (r *PortfolioRepository) Insert(portfolio *models.Portfolio) error {
	return r.store.InsertPortfolio(portfolio)
}

func (r *PortfolioRepository) Update(portfolio *models.Portfolio) error {
	return r.store.UpdatePortfolio(portfolio)
}

func (r *PortfolioRepository) Delete(portfolio *models.Portfolio) error {
	return r.store.DeletePortfolio(portfolio)
}

func (r *PortfolioRepository) GetPortfolioByID(id uint) (*models.Portfolio, error) {
	return r.store.GetPortfolioByID(id)
}

func (r *PortfolioRepository) GetAllPortfolio(ctx context.Context) <-chan []models.Portfolio {
	return r.store.WatchPortfolios(ctx)
}
