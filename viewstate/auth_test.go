package viewstate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/session"
)

func newAuthState(t *testing.T, r *testRepos) (*AuthState, *session.Manager) {
	t.Helper()
	sess, err := session.NewManager(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return NewAuthState(r.users, sess), sess
}

func TestRegisterCreatesClientWithNormalizedWhatsApp(t *testing.T) {
	r := setupTestRepos(t)
	auth, _ := newAuthState(t, r)

	ok, msg := auth.Register("Budi", "budi@gmail.com", "081234567890", "Abcdef1!")
	require.True(t, ok, msg)

	user, err := r.store.GetUserByEmail("budi@gmail.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleClient, user.Role)
	require.NotNil(t, user.WhatsappNumber)
	assert.Equal(t, "+6281234567890", *user.WhatsappNumber)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	r := setupTestRepos(t)
	auth, _ := newAuthState(t, r)

	cases := []struct {
		name, email, whatsapp, password string
	}{
		{"Budi", "budi@yahoo.com", "81234567890", "Abcdef1!"},
		{"Budi", "budi@gmail.com", "12345", "Abcdef1!"},
		{"Budi", "budi@gmail.com", "81234567890", "weak"},
		{"9Budi", "budi@gmail.com", "81234567890", "Abcdef1!"},
	}
	for _, tc := range cases {
		ok, msg := auth.Register(tc.name, tc.email, tc.whatsapp, tc.password)
		assert.False(t, ok)
		assert.NotEmpty(t, msg)
	}

	user, err := r.store.GetUserByEmail("budi@gmail.com")
	require.NoError(t, err)
	assert.Nil(t, user, "no account may be created from invalid input")
}

func TestLoginPopulatesSession(t *testing.T) {
	r := setupTestRepos(t)
	auth, sess := newAuthState(t, r)
	client := seedClient(t, r, "Budi", "budi@gmail.com")

	user := auth.Login("budi@gmail.com", "Secret1!")
	require.NotNil(t, user)
	assert.Equal(t, client.ID, user.ID)

	assert.True(t, sess.IsLoggedIn())
	assert.Equal(t, client.ID, sess.UserID())
	assert.Equal(t, models.RoleClient, sess.UserRole())
	assert.Equal(t, ScreenClientHome, auth.InitialScreen())
}

func TestLoginFailsOnWrongCredentials(t *testing.T) {
	r := setupTestRepos(t)
	auth, sess := newAuthState(t, r)
	seedClient(t, r, "Budi", "budi@gmail.com")

	assert.Nil(t, auth.Login("budi@gmail.com", "wrong"))
	assert.Nil(t, auth.Login("nobody@gmail.com", "Secret1!"))
	assert.False(t, sess.IsLoggedIn())
}

func TestLogoutClearsSession(t *testing.T) {
	r := setupTestRepos(t)
	auth, sess := newAuthState(t, r)
	seedClient(t, r, "Budi", "budi@gmail.com")

	require.NotNil(t, auth.Login("budi@gmail.com", "Secret1!"))
	auth.Logout()

	assert.False(t, sess.IsLoggedIn())
	assert.Equal(t, ScreenWelcome, auth.InitialScreen())
}

func TestInitialScreenByRole(t *testing.T) {
	r := setupTestRepos(t)
	auth, _ := newAuthState(t, r)
	seedAdmin(t, r)

	assert.Equal(t, ScreenWelcome, auth.InitialScreen())

	require.NotNil(t, auth.Login("rahayu@gmail.com", "@Rahayu123"))
	assert.Equal(t, ScreenAdminDashboard, auth.InitialScreen())
}
