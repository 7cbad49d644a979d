// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/farellandr/hostspot/config"
	"github.com/farellandr/hostspot/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database with the default categories.
// The pool is pinned to one connection so every query sees the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db), "migrate sqlite")
	return db
}

func Category(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	var category models.Category
	require.NoError(t, db.Where("name = ?", name).First(&category).Error)
	return category
}

// Host creates an account with a host profile in the named category.
func Host(t *testing.T, db *gorm.DB, email, categoryName string) models.HostProfile {
	t.Helper()
	category := Category(t, db, categoryName)

	account := models.Account{Username: models.UsernameFromEmail(email), Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&account).Error)

	host := models.HostProfile{AccountID: account.ID, CategoryID: &category.ID}
	require.NoError(t, db.Create(&host).Error)
	return host
}

func Listing(t *testing.T, db *gorm.DB, host models.HostProfile, categoryName, title string) models.Listing {
	t.Helper()
	category := Category(t, db, categoryName)

	listing := models.Listing{
		HostID:      host.ID,
		Title:       title,
		Description: title + " description",
		CategoryID:  category.ID,
		ListingType: models.ListingTypeEvent,
		Latitude:    -6.2,
		Longitude:   106.8,
		Address:     "Jl. Sudirman 1",
		BookingLink: "https://example.com/book",
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}
