package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	logging "braincheck/internal/logging"
	"braincheck/internal/models"
)

// Open connects to the local SQLite store and runs migrations. The
// schema is a single key-value table; everything the app persists
// (reaction history, personal bests, theme flag) lives in JSON values
// keyed by fixed identifiers.
func Open(path string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logging.NewGormZapLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to run store migrations: %w", err)
	}

	log.Info("Local store ready", zap.String("path", path))
	return db, nil
}
