// Package sqlite stores the property collection in a SQLite database.
//
// The database is a key-value table: the collection is one row addressed by
// rentals.SlotKey, holding the same text as a file slot.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/etnz/rentals"
	driver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type slotRow struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"type:text;column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (slotRow) TableName() string { return "slots" }

// Slot is a rentals.Slot backed by one row of a SQLite database.
type Slot struct {
	db   *gorm.DB
	path string
	key  string
}

// Open opens, or creates, the database at path and returns the slot for
// rentals.SlotKey.
func Open(path string) (*Slot, error) {
	db, err := gorm.Open(driver.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(&slotRow{}); err != nil {
		return nil, fmt.Errorf("could not prepare database %q: %w", path, err)
	}
	return &Slot{db: db, path: path, key: rentals.SlotKey}, nil
}

// WithKey returns a slot on the same database addressed by key.
func (s *Slot) WithKey(key string) *Slot {
	return &Slot{db: s.db, path: s.path, key: key}
}

// Read returns the stored text. An absent row is reported as fs.ErrNotExist.
func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	var row slotRow
	err := s.db.WithContext(ctx).Where(&slotRow{Key: s.key}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("slot %s: %w", s, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read slot %s: %w", s, err)
	}
	return []byte(row.Value), nil
}

// Write replaces the stored text.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	row := slotRow{Key: s.key, Value: string(data), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("could not write slot %s: %w", s, err)
	}
	return nil
}

// Close closes the database.
func (s *Slot) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func (s *Slot) String() string { return "sqlite:" + s.path + "#" + s.key }
