package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fespace-studio/fespace/models"
)

// InsertUser persists a user, replacing any existing row with the same id.
func (s *Store) InsertUser(user *models.User) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error; err != nil {
		return err
	}
	s.watcher.notify(models.User{}.TableName())
	return nil
}

// UpdateUser replaces the full row keyed by the user's id.
func (s *Store) UpdateUser(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		return err
	}
	s.watcher.notify(models.User{}.TableName())
	return nil
}

// DeleteUser removes the row keyed by the user's id. Present for completeness;
// the app never deletes accounts in its normal flow.
func (s *Store) DeleteUser(user *models.User) error {
	if err := s.db.Delete(&models.User{}, user.ID).Error; err != nil {
		return err
	}
	s.watcher.notify(models.User{}.TableName())
	return nil
}

// GetUserByID fetches a single user. A missing row returns (nil, nil).
func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches the first user with the given email.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByCredentials is the login lookup: email plus password must both
// match. A failed login returns (nil, nil), never an error.
func (s *Store) GetUserByCredentials(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountUsersByRole returns the number of users holding the given role.
func (s *Store) CountUsersByRole(role models.Role) (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// WatchUsersByRole is a live list of every user holding the given role,
// newest first.
func (s *Store) WatchUsersByRole(ctx context.Context, role models.Role) <-chan []models.User {
	return watchQuery(ctx, s.watcher, models.User{}.TableName(), func() ([]models.User, error) {
		var users []models.User
		err := s.db.Where("role = ?", role).Order("created_at desc").Find(&users).Error
		return users, err
	})
}

// WatchUserCountByRole is a live count of users holding the given role.
func (s *Store) WatchUserCountByRole(ctx context.Context, role models.Role) <-chan int64 {
	return watchQuery(ctx, s.watcher, models.User{}.TableName(), func() (int64, error) {
		return s.CountUsersByRole(role)
	})
}

// WatchUserByID is a live lookup of a single user; emits nil while absent.
func (s *Store) WatchUserByID(ctx context.Context, id uint) <-chan *models.User {
	return watchQuery(ctx, s.watcher, models.User{}.TableName(), func() (*models.User, error) {
		return s.GetUserByID(id)
	})
}

// WatchUserByEmail is a live lookup of a single user by email.
func (s *Store) WatchUserByEmail(ctx context.Context, email string) <-chan *models.User {
	return watchQuery(ctx, s.watcher, models.User{}.TableName(), func() (*models.User, error) {
		return s.GetUserByEmail(email)
	})
}
