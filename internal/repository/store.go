// Package repository is the durable storage collaborator: a string
// key-value store with typed accessors layered on top. Reads that hit
// corrupt or missing data degrade to "no record" — a scoring flow is
// never failed over a persistence problem.
package repository

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"braincheck/internal/models"
)

// Fixed storage keys. The key set is enumerated up front; nothing
// grows it at runtime.
const (
	keyReactionHistory    = "reaction_history"
	keyTheme              = "theme"
	keyPersonalBestPrefix = "personal_best:"
)

// Store wraps the key-value table.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates a Store over an opened database.
func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// Get returns the raw value for a key, with found=false when the key
// has never been written or the read failed.
func (s *Store) Get(key string) (string, bool) {
	var entry models.KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("Store read failed, treating as missing", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return entry.Value, true
}

// Set writes a raw value under a key, last write wins.
func (s *Store) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Remove deletes a key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	return s.db.Delete(&models.KVEntry{}, "key = ?", key).Error
}

// Theme returns the persisted theme preference flag, or "" when unset.
func (s *Store) Theme() string {
	value, _ := s.Get(keyTheme)
	return value
}

// SetTheme persists the theme preference flag.
func (s *Store) SetTheme(theme string) error {
	return s.Set(keyTheme, theme)
}
