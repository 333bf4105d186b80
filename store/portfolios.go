package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fespace-studio/fespace/models"
)

// InsertPortfolio persists a portfolio item, replacing any existing row with
// the same id.
func (s *Store) InsertPortfolio(portfolio *models.Portfolio) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(portfolio).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Portfolio{}.TableName())
	return nil
}

// UpdatePortfolio replaces the full row keyed by the portfolio's id.
func (s *Store) UpdatePortfolio(portfolio *models.Portfolio) error {
	if err := s.db.Save(portfolio).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Portfolio{}.TableName())
	return nil
}

// DeletePortfolio removes the row keyed by the portfolio's id.
func (s *Store) DeletePortfolio(portfolio *models.Portfolio) error {
	if err := s.db.Delete(&models.Portfolio{}, portfolio.ID).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Portfolio{}.TableName())
	return nil
}

// GetPortfolioByID fetches a single portfolio item. A missing row returns
// (nil, nil).
func (s *Store) GetPortfolioByID(id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := s.db.First(&portfolio, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// ListPortfolios returns every portfolio item, newest first.
func (s *Store) ListPortfolios() ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := s.db.Order("created_at desc").Find(&portfolios).Error
	return portfolios, err
}

// WatchPortfolios is a live list of every portfolio item, newest first.
func (s *Store) WatchPortfolios(ctx context.Context) <-chan []models.Portfolio {
	return watchQuery(ctx, s.watcher, models.Portfolio{}.TableName(), s.ListPortfolios)
}
