package viewstate

import (
	"github.com/fespace-studio/fespace/logger"
	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/repository"
	"github.com/fespace-studio/fespace/session"
	"github.com/fespace-studio/fespace/utils"
)

// AuthState backs the welcome, login, and registration screens.
type AuthState struct {
	users   *repository.UserRepository
	session *session.Manager

	*notices
}

// NewAuthState wires authentication against the user repository and the
// local session store.
func NewAuthState(users *repository.UserRepository, sess *session.Manager) *AuthState {
	return &AuthState{
		users:   users,
		session: sess,
		notices: newNotices(),
	}
}

// Register validates the registration fields and creates a client account.
// The WhatsApp number is stored in canonical +62 form. The returned message
// is empty on success and a user-facing validation message otherwise.
func (s *AuthState) Register(name, email, whatsapp, password string) (bool, string) {
	if ok, msg := utils.ValidateRegistration(name, email, whatsapp, password); !ok {
		return false, msg
	}

	normalized := utils.NormalizeWhatsApp(whatsapp)
	user := models.User{
		Name:           name,
		Email:          email,
		Password:       password,
		Role:           models.RoleClient,
		WhatsappNumber: &normalized,
	}
	if err := s.users.InsertUser(&user); err != nil {
		s.fail("Registration failed", err)
		return false, "Registration failed, please try again"
	}
	return true, ""
}

// Login compares the credentials against the store. On success the session is
// populated and the user returned; a failed login returns nil.
func (s *AuthState) Login(email, password string) *models.User {
	user, err := s.users.GetUser(email, password)
	if err != nil {
		s.fail("Login failed", err)
		return nil
	}
	if user == nil {
		return nil
	}

	if err := s.session.SaveSession(user.ID, user.Role, user.Name, user.Email); err != nil {
		s.fail("Failed to save session", err)
		return nil
	}
	logger.Log.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return user
}

// Logout clears the stored session.
func (s *AuthState) Logout() {
	if err := s.session.ClearSession(); err != nil {
		s.fail("Failed to clear session", err)
	}
}

// InitialScreen decides which screen the navigation layer opens with, from
// the synchronously-read session.
func (s *AuthState) InitialScreen() Screen {
	if !s.session.IsLoggedIn() {
		return ScreenWelcome
	}
	if s.session.UserRole() == models.RoleAdmin {
		return ScreenAdminDashboard
	}
	return ScreenClientHome
}

// Screen names the entry points of the navigation graph.
type Screen string

const (
	ScreenWelcome        Screen = "welcome"
	ScreenAdminDashboard Screen = "admin_dashboard"
	ScreenClientHome     Screen = "client_home"
)
