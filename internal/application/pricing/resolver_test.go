package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSelectionRepository is a mock implementation of batch.SelectionRepository
type MockSelectionRepository struct {
	mock.Mock
}

func (m *MockSelectionRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) ([]batch.SupplierSelection, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).([]batch.SupplierSelection), args.Error(1)
}

func (m *MockSelectionRepository) Upsert(ctx context.Context, s *batch.SupplierSelection) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSelectionRepository) Delete(ctx context.Context, batchID, rawMaterialID uuid.UUID) error {
	args := m.Called(ctx, batchID, rawMaterialID)
	return args.Error(0)
}

// MockDefaultOfferRepository is a mock implementation of supplier.DefaultOfferRepository
type MockDefaultOfferRepository struct {
	mock.Mock
}

func (m *MockDefaultOfferRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (*supplier.DefaultOffer, error) {
	args := m.Called(ctx, rawMaterialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.DefaultOffer), args.Error(1)
}

func (m *MockDefaultOfferRepository) Set(ctx context.Context, rawMaterialID, offerID uuid.UUID) error {
	args := m.Called(ctx, rawMaterialID, offerID)
	return args.Error(0)
}

func (m *MockDefaultOfferRepository) Clear(ctx context.Context, rawMaterialID uuid.UUID) error {
	args := m.Called(ctx, rawMaterialID)
	return args.Error(0)
}

// MockOfferRepository is a mock implementation of supplier.OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]supplier.Offer, error) {
	args := m.Called(ctx, rawMaterialID)
	return args.Get(0).([]supplier.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindActiveByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]supplier.Offer, error) {
	args := m.Called(ctx, rawMaterialID)
	return args.Get(0).([]supplier.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]supplier.Offer, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]supplier.Offer), args.Error(1)
}

func (m *MockOfferRepository) Save(ctx context.Context, o *supplier.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockOfferPriceRepository is a mock implementation of supplier.OfferPriceRepository
type MockOfferPriceRepository struct {
	mock.Mock
}

func (m *MockOfferPriceRepository) FindByOffer(ctx context.Context, offerID uuid.UUID) ([]supplier.OfferPrice, error) {
	args := m.Called(ctx, offerID)
	return args.Get(0).([]supplier.OfferPrice), args.Error(1)
}

func (m *MockOfferPriceRepository) FindAsOf(ctx context.Context, offerID uuid.UUID, date time.Time) (*supplier.OfferPrice, error) {
	args := m.Called(ctx, offerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.OfferPrice), args.Error(1)
}

func (m *MockOfferPriceRepository) Save(ctx context.Context, p *supplier.OfferPrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockManualPriceRepository is a mock implementation of material.ManualPriceRepository
type MockManualPriceRepository struct {
	mock.Mock
}

func (m *MockManualPriceRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]material.ManualPrice, error) {
	args := m.Called(ctx, rawMaterialID)
	return args.Get(0).([]material.ManualPrice), args.Error(1)
}

func (m *MockManualPriceRepository) FindAsOf(ctx context.Context, rawMaterialID uuid.UUID, date time.Time) (*material.ManualPrice, error) {
	args := m.Called(ctx, rawMaterialID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.ManualPrice), args.Error(1)
}

func (m *MockManualPriceRepository) Save(ctx context.Context, p *material.ManualPrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func newOfferTierFixture() (*OfferTier, *MockSelectionRepository, *MockDefaultOfferRepository, *MockOfferRepository, *MockOfferPriceRepository) {
	selections := new(MockSelectionRepository)
	defaults := new(MockDefaultOfferRepository)
	offers := new(MockOfferRepository)
	prices := new(MockOfferPriceRepository)
	return NewOfferTier(selections, defaults, offers, prices), selections, defaults, offers, prices
}

func mustOffer(t *testing.T, rawMaterialID uuid.UUID, packageSize int64) *supplier.Offer {
	t.Helper()
	o, err := supplier.NewOffer(uuid.New(), rawMaterialID, decimal.NewFromInt(packageSize), "g", "", "")
	require.NoError(t, err)
	return o
}

func TestOfferTier_Resolve(t *testing.T) {
	ctx := context.Background()
	batchID := uuid.New()
	rawMaterialID := uuid.New()
	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("selection override beats default offer", func(t *testing.T) {
		tier, selections, _, offers, prices := newOfferTierFixture()

		override := mustOffer(t, rawMaterialID, 50)
		sel, err := batch.NewSupplierSelection(batchID, rawMaterialID, override.ID)
		require.NoError(t, err)

		selections.On("FindByBatch", ctx, batchID).Return([]batch.SupplierSelection{*sel}, nil)
		offers.On("FindByID", ctx, override.ID).Return(override, nil)
		price, err := supplier.NewOfferPrice(override.ID, decimal.NewFromInt(100), "EUR", date, nil)
		require.NoError(t, err)
		prices.On("FindAsOf", ctx, override.ID, date).Return(price, nil)

		unit, ok, err := tier.Resolve(ctx, batchID, rawMaterialID, date)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, unit.Equal(decimal.NewFromInt(2)))
	})

	t.Run("falls back to default offer when no selection", func(t *testing.T) {
		tier, selections, defaults, offers, prices := newOfferTierFixture()

		def := mustOffer(t, rawMaterialID, 100)
		mapping, err := supplier.NewDefaultOffer(rawMaterialID, def.ID)
		require.NoError(t, err)

		selections.On("FindByBatch", ctx, batchID).Return([]batch.SupplierSelection{}, nil)
		defaults.On("FindByRawMaterial", ctx, rawMaterialID).Return(mapping, nil)
		offers.On("FindByID", ctx, def.ID).Return(def, nil)
		price, err := supplier.NewOfferPrice(def.ID, decimal.NewFromInt(300), "EUR", date, nil)
		require.NoError(t, err)
		prices.On("FindAsOf", ctx, def.ID, date).Return(price, nil)

		unit, ok, err := tier.Resolve(ctx, batchID, rawMaterialID, date)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, unit.Equal(decimal.NewFromInt(3)))
	})

	t.Run("misses when neither selection nor default exists", func(t *testing.T) {
		tier, selections, defaults, _, _ := newOfferTierFixture()

		selections.On("FindByBatch", ctx, batchID).Return([]batch.SupplierSelection{}, nil)
		defaults.On("FindByRawMaterial", ctx, rawMaterialID).Return(nil, shared.ErrNotFound)

		_, ok, err := tier.Resolve(ctx, batchID, rawMaterialID, date)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("misses when no price row covers the date", func(t *testing.T) {
		tier, selections, defaults, offers, prices := newOfferTierFixture()

		def := mustOffer(t, rawMaterialID, 100)
		mapping, err := supplier.NewDefaultOffer(rawMaterialID, def.ID)
		require.NoError(t, err)

		selections.On("FindByBatch", ctx, batchID).Return([]batch.SupplierSelection{}, nil)
		defaults.On("FindByRawMaterial", ctx, rawMaterialID).Return(mapping, nil)
		offers.On("FindByID", ctx, def.ID).Return(def, nil)
		prices.On("FindAsOf", ctx, def.ID, date).Return(nil, shared.ErrNotFound)

		_, ok, err := tier.Resolve(ctx, batchID, rawMaterialID, date)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("misses on zero package size instead of faulting", func(t *testing.T) {
		tier, selections, defaults, offers, prices := newOfferTierFixture()

		broken := &supplier.Offer{
			BaseAggregateRoot: shared.NewBaseAggregateRoot(),
			SupplierID:        uuid.New(),
			RawMaterialID:     rawMaterialID,
			PackageSize:       decimal.Zero,
			PackageUnit:       "g",
		}
		mapping, err := supplier.NewDefaultOffer(rawMaterialID, broken.ID)
		require.NoError(t, err)

		selections.On("FindByBatch", ctx, batchID).Return([]batch.SupplierSelection{}, nil)
		defaults.On("FindByRawMaterial", ctx, rawMaterialID).Return(mapping, nil)
		offers.On("FindByID", ctx, broken.ID).Return(broken, nil)
		price, err := supplier.NewOfferPrice(broken.ID, decimal.NewFromInt(100), "EUR", date, nil)
		require.NoError(t, err)
		prices.On("FindAsOf", ctx, broken.ID, date).Return(price, nil)

		_, ok, err := tier.Resolve(ctx, batchID, rawMaterialID, date)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		tier, selections, _, _, _ := newOfferTierFixture()

		selections.On("FindByBatch", ctx, batchID).Return([]batch.SupplierSelection{}, errors.New("db down"))

		_, _, err := tier.Resolve(ctx, batchID, rawMaterialID, date)
		require.Error(t, err)
	})
}

func TestManualTier_Resolve(t *testing.T) {
	ctx := context.Background()
	rawMaterialID := uuid.New()
	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("returns per-gram price valid on the date", func(t *testing.T) {
		repo := new(MockManualPriceRepository)
		tier := NewManualTier(repo)

		price, err := material.NewManualPrice(rawMaterialID, decimal.RequireFromString("0.04"), "EUR", date, nil)
		require.NoError(t, err)
		repo.On("FindAsOf", ctx, rawMaterialID, date).Return(price, nil)

		unit, ok, err := tier.Resolve(ctx, uuid.Nil, rawMaterialID, date)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, unit.Equal(decimal.RequireFromString("0.04")))
	})

	t.Run("misses when no row covers the date", func(t *testing.T) {
		repo := new(MockManualPriceRepository)
		tier := NewManualTier(repo)

		repo.On("FindAsOf", ctx, rawMaterialID, date).Return(nil, shared.ErrNotFound)

		_, ok, err := tier.Resolve(ctx, uuid.Nil, rawMaterialID, date)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

type stubResolver struct {
	price decimal.Decimal
	ok    bool
	err   error
}

func (s stubResolver) Resolve(context.Context, uuid.UUID, uuid.UUID, time.Time) (decimal.Decimal, bool, error) {
	return s.price, s.ok, s.err
}

func TestChain_UnitPrice(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("first hit wins", func(t *testing.T) {
		chain := NewChain(
			stubResolver{price: decimal.NewFromInt(2), ok: true},
			stubResolver{price: decimal.NewFromInt(9), ok: true},
		)

		price, err := chain.UnitPrice(ctx, uuid.New(), uuid.New(), date)
		require.NoError(t, err)
		assert.True(t, price.Equal(decimal.NewFromInt(2)))
	})

	t.Run("falls through misses to later tiers", func(t *testing.T) {
		chain := NewChain(
			stubResolver{ok: false},
			stubResolver{price: decimal.RequireFromString("0.05"), ok: true},
		)

		price, err := chain.UnitPrice(ctx, uuid.New(), uuid.New(), date)
		require.NoError(t, err)
		assert.True(t, price.Equal(decimal.RequireFromString("0.05")))
	})

	t.Run("all tiers miss resolves to zero", func(t *testing.T) {
		chain := NewChain(stubResolver{}, stubResolver{})

		price, err := chain.UnitPrice(ctx, uuid.New(), uuid.New(), date)
		require.NoError(t, err)
		assert.True(t, price.IsZero())
	})

	t.Run("errors stop the chain", func(t *testing.T) {
		chain := NewChain(
			stubResolver{err: errors.New("db down")},
			stubResolver{price: decimal.NewFromInt(1), ok: true},
		)

		_, err := chain.UnitPrice(ctx, uuid.New(), uuid.New(), date)
		require.Error(t, err)
	})
}
