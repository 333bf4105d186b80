package store

import (
	"github.com/fespace-studio/fespace/logger"
	"github.com/fespace-studio/fespace/models"
)

const (
	// SeedAdminEmail is the fixed address of the built-in admin account. The
	// admin profile screen resolves the account by this email.
	SeedAdminEmail = "rahayu@gmail.com"

	seedAdminName     = "rahayu"
	seedAdminPassword = "@Rahayu123"
	seedAdminWhatsapp = "+6281212345678"
)

// SeedFlag gates first-run seeding; the session manager implements it on top
// of the local key-value file.
type SeedFlag interface {
	IsSeeded() bool
	MarkSeeded() error
}

// SeedDatabase creates the single built-in admin account on first launch.
// It is idempotent: both the one-time flag and an existence check on the
// admin email prevent a second account, even if the flag file was lost.
func (s *Store) SeedDatabase(flag SeedFlag) error {
	if flag.IsSeeded() {
		return nil
	}

	existing, err := s.GetUserByEmail(SeedAdminEmail)
	if err != nil {
		return err
	}
	if existing == nil {
		whatsapp := seedAdminWhatsapp
		admin := models.User{
			Name:           seedAdminName,
			Email:          SeedAdminEmail,
			Password:       seedAdminPassword,
			Role:           models.RoleAdmin,
			WhatsappNumber: &whatsapp,
		}
		if err := s.InsertUser(&admin); err != nil {
			return err
		}
		logger.Log.Info().Str("email", SeedAdminEmail).Msg("seeded admin account")
	}

	return flag.MarkSeeded()
}
