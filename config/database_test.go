package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fespace-studio/fespace/models"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &Config{
		DBPath: filepath.Join(t.TempDir(), "fespace.db"),
		GoEnv:  "test",
	}

	require.NoError(t, ConnectDatabase(cfg))
	db := GetDB()
	require.NotNil(t, db)

	require.NoError(t, MigrateDatabase(db))

	for _, model := range []interface{}{
		&models.User{}, &models.Service{}, &models.Portfolio{},
		&models.Order{}, &models.OrderDocument{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	// Migrating again is additive and must not fail or drop data.
	require.NoError(t, db.Create(&models.User{
		Name: "Budi", Email: "budi@gmail.com", Password: "Secret1!", Role: models.RoleClient,
	}).Error)
	require.NoError(t, MigrateDatabase(db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
