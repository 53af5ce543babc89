package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sangkips/receipts-api/internal/config"
	"github.com/sangkips/receipts-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the embedded SQLite database, creating the parent
// directory if needed.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); !strings.HasPrefix(cfg.Path, "file:") && cfg.Path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite serializes writers itself; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Successfully opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.BusinessSettings{},
		&entity.Receipt{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
