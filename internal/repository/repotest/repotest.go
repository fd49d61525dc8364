// Package repotest provides an in-memory store for tests.
package repotest

import (
	"testing"
	"time"

	"github.com/farellandr/fyyur/config"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewStore opens a fresh in-memory SQLite database with the schema
// migrated and foreign keys enforced. It is closed when the test ends.
func NewStore(t testing.TB) *repository.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// One connection keeps the in-memory database alive and shared, and
	// keeps the pragma below in effect for every query.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.New(db)
}

// InsertDanglingShow writes a show straight to the table with foreign key
// checks switched off, so it may point at rows that do not exist.
func InsertDanglingShow(t testing.TB, store *repository.Store, artistID, venueID uuid.UUID, start time.Time) models.Show {
	t.Helper()

	db := store.DB()
	if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		t.Fatalf("disable foreign keys: %v", err)
	}
	defer db.Exec("PRAGMA foreign_keys = ON")

	show := models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}
	if err := db.Create(&show).Error; err != nil {
		t.Fatalf("insert show: %v", err)
	}
	return show
}
