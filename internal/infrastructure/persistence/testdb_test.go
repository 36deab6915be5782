package persistence

import (
	"testing"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&material.RawMaterial{},
		&material.ManualPrice{},
		&supplier.Supplier{},
		&supplier.Offer{},
		&supplier.OfferPrice{},
		&supplier.DefaultOffer{},
		&recipe.Recipe{},
		&recipe.RecipeItem{},
		&catalog.Product{},
		&batch.BatchTemplate{},
		&batch.TemplateItem{},
		&batch.Batch{},
		&batch.SupplierSelection{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
