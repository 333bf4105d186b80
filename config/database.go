package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fespace-studio/fespace/models"
)

var DB *gorm.DB

// ConnectDatabase opens the local store. By default this is a SQLite file in
// app-private storage; setting DATABASE_URL switches to PostgreSQL instead.
func ConnectDatabase(cfg *Config) error {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var err error
	if cfg.DatabaseURL != "" {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	} else {
		DB, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// MigrateDatabase applies the schema additively. Unlike the original app,
// a schema version bump never discards existing rows.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Portfolio{},
		&models.Order{},
		&models.OrderDocument{},
	)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
