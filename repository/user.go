package repository

import (
	"context"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/store"
)

// UserRepository wraps the user access layer for the view-state holders.
type UserRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) InsertUser(user *models.User) error {
	return r.store.InsertUser(user)
}

func (r *UserRepository) Update(user *models.User) error {
	return r.store.UpdateUser(user)
}

func (r *UserRepository) Delete(user *models.User) error {
	return r.store.DeleteUser(user)
}

func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	return r.store.GetUserByID(id)
}

// GetUser is the login lookup: both email and password must match.
func (r *UserRepository) GetUser(email, password string) (*models.User, error) {
	return r.store.GetUserByCredentials(email, password)
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	return r.store.GetUserByEmail(email)
}

func (r *UserRepository) GetUserByIDLive(ctx context.Context, id uint) <-chan *models.User {
	return r.store.WatchUserByID(ctx, id)
}

func (r *UserRepository) GetUserByEmailLive(ctx context.Context, email string) <-chan *models.User {
	return r.store.WatchUserByEmail(ctx, email)
}

// GetAllClients is a live list of every client account.
func (r *UserRepository) GetAllClients(ctx context.Context) <-chan []models.User {
	return r.store.WatchUsersByRole(ctx, models.RoleClient)
}

// GetClientCount is a live count of registered clients.
func (r *UserRepository) GetClientCount(ctx context.Context) <-chan int64 {
	return r.store.WatchUserCountByRole(ctx, models.RoleClient)
}
