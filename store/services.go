package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fespace-studio/fespace/models"
)

// InsertService persists a service, replacing any existing row with the same id.
func (s *Store) InsertService(service *models.Service) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(service).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Service{}.TableName())
	return nil
}

// UpdateService replaces the full row keyed by the service's id.
func (s *Store) UpdateService(service *models.Service) error {
	if err := s.db.Save(service).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Service{}.TableName())
	return nil
}

// DeleteService removes the row keyed by the service's id.
func (s *Store) DeleteService(service *models.Service) error {
	if err := s.db.Delete(&models.Service{}, service.ID).Error; err != nil {
		return err
	}
	s.watcher.notify(models.Service{}.TableName())
	return nil
}

// GetServiceByID fetches a single service. A missing row returns (nil, nil).
func (s *Store) GetServiceByID(id uint) (*models.Service, error) {
	var service models.Service
	err := s.db.First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// ListServices returns every service, newest first.
func (s *Store) ListServices() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Order("created_at desc").Find(&services).Error
	return services, err
}

// WatchServices is a live list of every service, newest first.
func (s *Store) WatchServices(ctx context.Context) <-chan []models.Service {
	return watchQuery(ctx, s.watcher, models.Service{}.TableName(), s.ListServices)
}

// WatchServicesByAdmin is a live list of services owned by one admin.
func (s *Store) WatchServicesByAdmin(ctx context.Context, adminID uint) <-chan []models.Service {
	return watchQuery(ctx, s.watcher, models.Service{}.TableName(), func() ([]models.Service, error) {
		var services []models.Service
		err := s.db.Where("admin_id = ?", adminID).Find(&services).Error
		return services, err
	})
}
