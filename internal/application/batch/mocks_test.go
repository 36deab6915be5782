package batch

import (
	"context"
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBatchRepository is a mock implementation of batch.Repository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]batch.Batch, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) Save(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockTemplateRepository is a mock implementation of batch.TemplateRepository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*batch.BatchTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.BatchTemplate), args.Error(1)
}

func (m *MockTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]batch.BatchTemplate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]batch.BatchTemplate), args.Error(1)
}

func (m *MockTemplateRepository) Save(ctx context.Context, t *batch.BatchTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

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

// MockProductRepository is a mock implementation of catalog.Repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecipeRepository is a mock implementation of recipe.Repository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]recipe.Recipe, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Save(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockRawMaterialRepository is a mock implementation of material.RawMaterialRepository
type MockRawMaterialRepository struct {
	mock.Mock
}

func (m *MockRawMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*material.RawMaterial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.RawMaterial), args.Error(1)
}

func (m *MockRawMaterialRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]material.RawMaterial, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]material.RawMaterial), args.Error(1)
}

func (m *MockRawMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]material.RawMaterial, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]material.RawMaterial), args.Error(1)
}

func (m *MockRawMaterialRepository) Save(ctx context.Context, mat *material.RawMaterial) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}

func (m *MockRawMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSupplierRepository is a mock implementation of supplier.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supplier.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
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

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
