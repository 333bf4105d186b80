package viewstate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/repository"
	"github.com/fespace-studio/fespace/store"
)

type testRepos struct {
	store      *store.Store
	users      *repository.UserRepository
	services   *repository.ServiceRepository
	portfolios *repository.PortfolioRepository
	orders     *repository.OrderRepository
	documents  *repository.OrderDocumentRepository
}

func setupTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Portfolio{},
		&models.Order{},
		&models.OrderDocument{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	s := store.New(db)
	return &testRepos{
		store:      s,
		users:      repository.NewUserRepository(s),
		services:   repository.NewServiceRepository(s),
		portfolios: repository.NewPortfolioRepository(s),
		orders:     repository.NewOrderRepository(s),
		documents:  repository.NewOrderDocumentRepository(s),
	}
}

func newAdminState(t *testing.T, r *testRepos) *AdminState {
	t.Helper()
	s := NewAdminState(r.portfolios, r.services, r.orders, r.users, r.documents)
	t.Cleanup(s.Close)
	return s
}

func newClientState(t *testing.T, r *testRepos) *ClientState {
	t.Helper()
	s := NewClientState(r.portfolios, r.services, r.orders, r.documents)
	t.Cleanup(s.Close)
	return s
}

func seedAdmin(t *testing.T, r *testRepos) *models.User {
	t.Helper()
	admin := models.User{
		Name:     "rahayu",
		Email:    store.SeedAdminEmail,
		Password: "@Rahayu123",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, r.store.InsertUser(&admin))
	return &admin
}

func seedClient(t *testing.T, r *testRepos, name, email string) *models.User {
	t.Helper()
	client := models.User{
		Name:     name,
		Email:    email,
		Password: "Secret1!",
		Role:     models.RoleClient,
	}
	require.NoError(t, r.store.InsertUser(&client))
	return &client
}
