package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is required:
// unique-index violations must surface as gorm.ErrDuplicatedKey so the
// repositories can report duplicates authoritatively instead of relying
// on the check-then-act pre-query.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the portal tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBTest{},
		&repositories.DBQuestion{},
		&repositories.DBSubmission{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
