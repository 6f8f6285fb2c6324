package config

import (
	"fmt"

	"noteshare/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the database and runs migrations. Postgres is used when
// DB_URL is set, otherwise a local sqlite file. TranslateError is on so
// unique-index violations surface as gorm.ErrDuplicatedKey on both drivers.
func Connect(cfg Config) error {
	dialector := sqlite.Open(cfg.SQLitePath)
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	var err error
	Database, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(Database); err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return nil
}

// Migrate runs the schema migrations on db. Split out so tests can migrate
// throwaway databases without going through Connect.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Note{}, &models.Reaction{}, &models.Follow{})
}
