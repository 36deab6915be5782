package persistence

import (
	"context"
	"testing"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSupplier(t *testing.T, name string) *supplier.Supplier {
	t.Helper()
	s, err := supplier.NewSupplier(name, "", "", "")
	require.NoError(t, err)
	return s
}

func mustOffer(t *testing.T, supplierID, rawMaterialID uuid.UUID, packageSize string) *supplier.Offer {
	t.Helper()
	o, err := supplier.NewOffer(supplierID, rawMaterialID, decimal.RequireFromString(packageSize), "g", "", "")
	require.NoError(t, err)
	return o
}

func TestGormSupplierRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and finds supplier", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormSupplierRepository(db)

		s := mustSupplier(t, "Naturals GmbH")
		require.NoError(t, repo.Save(ctx, s))

		found, err := repo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Naturals GmbH", found.Name)
		assert.True(t, found.IsActive)
	})

	t.Run("filters by is_active", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormSupplierRepository(db)

		active := mustSupplier(t, "Active Co")
		inactive := mustSupplier(t, "Inactive Co")
		inactive.Deactivate()
		require.NoError(t, repo.Save(ctx, active))
		require.NoError(t, repo.Save(ctx, inactive))

		filter := shared.DefaultFilter()
		filter.Filters["is_active"] = true

		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Active Co", found[0].Name)
	})
}

func TestGormOfferRepository_FindActiveByRawMaterial(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	supplierRepo := NewGormSupplierRepository(db)
	offerRepo := NewGormOfferRepository(db)

	rawID := uuid.New()

	activeSupplier := mustSupplier(t, "Active Co")
	inactiveSupplier := mustSupplier(t, "Inactive Co")
	inactiveSupplier.Deactivate()
	require.NoError(t, supplierRepo.Save(ctx, activeSupplier))
	require.NoError(t, supplierRepo.Save(ctx, inactiveSupplier))

	kept := mustOffer(t, activeSupplier.ID, rawID, "1000")
	inactiveOffer := mustOffer(t, activeSupplier.ID, rawID, "500")
	inactiveOffer.Deactivate()
	fromInactiveSupplier := mustOffer(t, inactiveSupplier.ID, rawID, "250")
	otherMaterial := mustOffer(t, activeSupplier.ID, uuid.New(), "100")

	for _, o := range []*supplier.Offer{kept, inactiveOffer, fromInactiveSupplier, otherMaterial} {
		require.NoError(t, offerRepo.Save(ctx, o))
	}

	offers, err := offerRepo.FindActiveByRawMaterial(ctx, rawID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, kept.ID, offers[0].ID)

	all, err := offerRepo.FindByRawMaterial(ctx, rawID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGormOfferPriceRepository_FindAsOf(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormOfferPriceRepository(db)
	offerID := uuid.New()

	until := day(2024, 5, 31)
	first, err := supplier.NewOfferPrice(offerID, decimal.RequireFromString("12.50"), "EUR", day(2024, 1, 1), &until)
	require.NoError(t, err)
	second, err := supplier.NewOfferPrice(offerID, decimal.RequireFromString("14.00"), "EUR", day(2024, 6, 1), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("resolves price within a closed window", func(t *testing.T) {
		price, err := repo.FindAsOf(ctx, offerID, day(2024, 3, 15))
		require.NoError(t, err)
		assert.True(t, price.PricePerPackage.Equal(decimal.RequireFromString("12.50")))
	})

	t.Run("resolves the open-ended successor", func(t *testing.T) {
		price, err := repo.FindAsOf(ctx, offerID, day(2025, 1, 1))
		require.NoError(t, err)
		assert.True(t, price.PricePerPackage.Equal(decimal.RequireFromString("14.00")))
	})

	t.Run("returns ErrNotFound before any validity", func(t *testing.T) {
		_, err := repo.FindAsOf(ctx, offerID, day(2023, 12, 31))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormDefaultOfferRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("set replaces existing mapping", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormDefaultOfferRepository(db)

		rawID := uuid.New()
		firstOffer := uuid.New()
		secondOffer := uuid.New()

		require.NoError(t, repo.Set(ctx, rawID, firstOffer))
		require.NoError(t, repo.Set(ctx, rawID, secondOffer))

		d, err := repo.FindByRawMaterial(ctx, rawID)
		require.NoError(t, err)
		assert.Equal(t, secondOffer, d.OfferID)

		var count int64
		require.NoError(t, db.Model(&supplier.DefaultOffer{}).Where("raw_material_id = ?", rawID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormDefaultOfferRepository(db)

		rawID := uuid.New()
		require.NoError(t, repo.Set(ctx, rawID, uuid.New()))
		require.NoError(t, repo.Clear(ctx, rawID))
		require.NoError(t, repo.Clear(ctx, rawID))

		_, err := repo.FindByRawMaterial(ctx, rawID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
