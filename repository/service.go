package repository

import (
	"context"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/store"
)

// ServiceRepository wraps the service access layer.
type ServiceRepository struct {
	store *store.Store
}

func NewServiceRepository(s *store.Store) *ServiceRepository {
	return &ServiceRepository{store: s}
}

func (r *ServiceRepository) AddService(service *models.Service) error {
	return r.store.InsertService(service)
}

func (r *ServiceRepository) UpdateService(service *models.Service) error {
	return r.store.UpdateService(service)
}

func (r *ServiceRepository) DeleteService(service *models.Service) error {
	return r.store.DeleteService(service)
}

func (r *ServiceRepository) GetServiceByID(id uint) (*models.Service, error) {
	return r.store.GetServiceByID(id)
}

func (r *ServiceRepository) GetAllServices(ctx context.Context) <-chan []models.Service {
	return r.store.WatchServices(ctx)
}

func (r *ServiceRepository) GetServicesByAdmin(ctx context.Context, adminID uint) <-chan []models.Service {
	return r.store.WatchServicesByAdmin(ctx, adminID)
}
