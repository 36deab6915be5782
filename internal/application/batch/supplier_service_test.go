package batch

import (
	"context"
	"testing"
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supplierFixture struct {
	batchRepo     *MockBatchRepository
	templateRepo  *MockTemplateRepository
	productRepo   *MockProductRepository
	recipeRepo    *MockRecipeRepository
	materialRepo  *MockRawMaterialRepository
	supplierRepo  *MockSupplierRepository
	offerRepo     *MockOfferRepository
	defaultRepo   *MockDefaultOfferRepository
	selectionRepo *MockSelectionRepository
	svc           *BatchSupplierService
}

func newSupplierFixture() *supplierFixture {
	f := &supplierFixture{
		batchRepo:     new(MockBatchRepository),
		templateRepo:  new(MockTemplateRepository),
		productRepo:   new(MockProductRepository),
		recipeRepo:    new(MockRecipeRepository),
		materialRepo:  new(MockRawMaterialRepository),
		supplierRepo:  new(MockSupplierRepository),
		offerRepo:     new(MockOfferRepository),
		defaultRepo:   new(MockDefaultOfferRepository),
		selectionRepo: new(MockSelectionRepository),
	}
	f.svc = NewBatchSupplierService(
		f.batchRepo, f.templateRepo, f.productRepo, f.recipeRepo,
		f.materialRepo, f.supplierRepo, f.offerRepo, f.defaultRepo,
		f.selectionRepo, NewNoOpTransactionScope(f.batchRepo, f.selectionRepo),
	)
	return f
}

func TestBatchSupplierService_GetConfig(t *testing.T) {
	ctx := context.Background()
	pricingDate := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("assembles sorted products, ingredients and offer options", func(t *testing.T) {
		f := newSupplierFixture()

		rawX, err := material.NewRawMaterial("Shea Butter", "g", "")
		require.NoError(t, err)

		r, err := recipe.NewRecipe("Body Butter", decimal.NewFromInt(100), "g", []recipe.ItemInput{
			{RawMaterialID: rawX.ID, AmountGram: decimal.NewFromInt(60)},
		})
		require.NoError(t, err)

		productB, err := catalog.NewProduct("Body Butter", "", "", &r.ID)
		require.NoError(t, err)
		productA, err := catalog.NewProduct("Almond Soap", "", "", nil)
		require.NoError(t, err)

		tpl, err := batch.NewBatchTemplate("Run", "", []batch.TemplateItemInput{
			{ProductID: productB.ID, Quantity: 10},
			{ProductID: productA.ID, Quantity: 4},
		})
		require.NoError(t, err)

		b, err := batch.NewBatch(tpl.ID)
		require.NoError(t, err)
		b.Open(pricingDate)
		b.ClearDomainEvents()

		supZ, err := supplier.NewSupplier("Zeta Oils", "", "", "")
		require.NoError(t, err)
		supA, err := supplier.NewSupplier("Alpha Butters", "", "", "")
		require.NoError(t, err)

		offerZ, err := supplier.NewOffer(supZ.ID, rawX.ID, decimal.NewFromInt(500), "g", "", "")
		require.NoError(t, err)
		offerA, err := supplier.NewOffer(supA.ID, rawX.ID, decimal.NewFromInt(1000), "g", "", "")
		require.NoError(t, err)

		mapping, err := supplier.NewDefaultOffer(rawX.ID, offerA.ID)
		require.NoError(t, err)

		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		f.templateRepo.On("FindByID", ctx, tpl.ID).Return(tpl, nil)
		f.productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*productB, *productA}, nil)
		f.selectionRepo.On("FindByBatch", ctx, b.ID).Return([]batch.SupplierSelection{}, nil)
		f.recipeRepo.On("FindByID", ctx, r.ID).Return(r, nil)
		f.materialRepo.On("FindByID", ctx, rawX.ID).Return(rawX, nil)
		f.offerRepo.On("FindActiveByRawMaterial", ctx, rawX.ID).Return([]supplier.Offer{*offerZ, *offerA}, nil)
		f.supplierRepo.On("FindByID", ctx, supZ.ID).Return(supZ, nil)
		f.supplierRepo.On("FindByID", ctx, supA.ID).Return(supA, nil)
		f.defaultRepo.On("FindByRawMaterial", ctx, rawX.ID).Return(mapping, nil)

		resp, err := f.svc.GetConfig(ctx, b.ID)
		require.NoError(t, err)

		assert.Equal(t, "2024-05-17", resp.PricingDate)
		require.Len(t, resp.Products, 2)
		// Sorted by product name
		assert.Equal(t, "Almond Soap", resp.Products[0].ProductName)
		assert.Empty(t, resp.Products[0].Ingredients)
		assert.Equal(t, "Body Butter", resp.Products[1].ProductName)

		require.Len(t, resp.Products[1].Ingredients, 1)
		ing := resp.Products[1].Ingredients[0]
		assert.Equal(t, rawX.ID, ing.RawMaterialID)
		assert.Equal(t, "Shea Butter", ing.RawMaterialName)
		assert.True(t, ing.GramsPerProductUnit.Equal(decimal.NewFromInt(60)))
		require.NotNil(t, ing.SelectedOfferID)
		assert.Equal(t, offerA.ID, *ing.SelectedOfferID)

		// Offers sorted by supplier name
		require.Len(t, ing.Offers, 2)
		assert.Equal(t, "Alpha Butters", ing.Offers[0].SupplierName)
		assert.Equal(t, "Zeta Oils", ing.Offers[1].SupplierName)
	})

	t.Run("selection override wins over default in the view", func(t *testing.T) {
		f := newSupplierFixture()

		rawX, err := material.NewRawMaterial("Shea Butter", "g", "")
		require.NoError(t, err)
		r, err := recipe.NewRecipe("Body Butter", decimal.NewFromInt(100), "g", []recipe.ItemInput{
			{RawMaterialID: rawX.ID, AmountGram: decimal.NewFromInt(60)},
		})
		require.NoError(t, err)
		product, err := catalog.NewProduct("Body Butter", "", "", &r.ID)
		require.NoError(t, err)

		tpl, err := batch.NewBatchTemplate("Run", "", []batch.TemplateItemInput{
			{ProductID: product.ID, Quantity: 1},
		})
		require.NoError(t, err)
		b, err := batch.NewBatch(tpl.ID)
		require.NoError(t, err)

		overrideOfferID := uuid.New()
		sel, err := batch.NewSupplierSelection(b.ID, rawX.ID, overrideOfferID)
		require.NoError(t, err)

		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		f.templateRepo.On("FindByID", ctx, tpl.ID).Return(tpl, nil)
		f.productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*product}, nil)
		f.selectionRepo.On("FindByBatch", ctx, b.ID).Return([]batch.SupplierSelection{*sel}, nil)
		f.recipeRepo.On("FindByID", ctx, r.ID).Return(r, nil)
		f.materialRepo.On("FindByID", ctx, rawX.ID).Return(rawX, nil)
		f.offerRepo.On("FindActiveByRawMaterial", ctx, rawX.ID).Return([]supplier.Offer{}, nil)

		resp, err := f.svc.GetConfig(ctx, b.ID)
		require.NoError(t, err)

		ing := resp.Products[0].Ingredients[0]
		require.NotNil(t, ing.SelectedOfferID)
		assert.Equal(t, overrideOfferID, *ing.SelectedOfferID)
		f.defaultRepo.AssertNotCalled(t, "FindByRawMaterial")
	})

	t.Run("inactive supplier offers are filtered out", func(t *testing.T) {
		f := newSupplierFixture()

		rawX, err := material.NewRawMaterial("Shea Butter", "g", "")
		require.NoError(t, err)
		r, err := recipe.NewRecipe("Body Butter", decimal.NewFromInt(100), "g", []recipe.ItemInput{
			{RawMaterialID: rawX.ID, AmountGram: decimal.NewFromInt(60)},
		})
		require.NoError(t, err)
		product, err := catalog.NewProduct("Body Butter", "", "", &r.ID)
		require.NoError(t, err)

		tpl, err := batch.NewBatchTemplate("Run", "", []batch.TemplateItemInput{
			{ProductID: product.ID, Quantity: 1},
		})
		require.NoError(t, err)
		b, err := batch.NewBatch(tpl.ID)
		require.NoError(t, err)

		dormant, err := supplier.NewSupplier("Dormant Trading", "", "", "")
		require.NoError(t, err)
		dormant.Deactivate()
		offer, err := supplier.NewOffer(dormant.ID, rawX.ID, decimal.NewFromInt(500), "g", "", "")
		require.NoError(t, err)

		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		f.templateRepo.On("FindByID", ctx, tpl.ID).Return(tpl, nil)
		f.productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*product}, nil)
		f.selectionRepo.On("FindByBatch", ctx, b.ID).Return([]batch.SupplierSelection{}, nil)
		f.recipeRepo.On("FindByID", ctx, r.ID).Return(r, nil)
		f.materialRepo.On("FindByID", ctx, rawX.ID).Return(rawX, nil)
		f.offerRepo.On("FindActiveByRawMaterial", ctx, rawX.ID).Return([]supplier.Offer{*offer}, nil)
		f.supplierRepo.On("FindByID", ctx, dormant.ID).Return(dormant, nil)
		f.defaultRepo.On("FindByRawMaterial", ctx, rawX.ID).Return(nil, shared.ErrNotFound)

		resp, err := f.svc.GetConfig(ctx, b.ID)
		require.NoError(t, err)

		assert.Empty(t, resp.Products[0].Ingredients[0].Offers)
	})

	t.Run("fails when batch does not exist", func(t *testing.T) {
		f := newSupplierFixture()
		batchID := uuid.New()
		f.batchRepo.On("FindByID", ctx, batchID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.GetConfig(ctx, batchID)
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBatchSupplierService_SaveSelections(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts validated pairs", func(t *testing.T) {
		f := newSupplierFixture()

		b, err := batch.NewBatch(uuid.New())
		require.NoError(t, err)
		rawX := uuid.New()
		offer, err := supplier.NewOffer(uuid.New(), rawX, decimal.NewFromInt(500), "g", "", "")
		require.NoError(t, err)

		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		f.offerRepo.On("FindByID", ctx, offer.ID).Return(offer, nil)
		f.selectionRepo.On("Upsert", ctx, mock.AnythingOfType("*batch.SupplierSelection")).Return(nil)

		err = f.svc.SaveSelections(ctx, b.ID, SaveSelectionsRequest{
			Selections: []SelectionPair{{RawMaterialID: rawX, OfferID: offer.ID}},
		})
		require.NoError(t, err)
		f.selectionRepo.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("rejects offer that does not sell the raw material", func(t *testing.T) {
		f := newSupplierFixture()

		b, err := batch.NewBatch(uuid.New())
		require.NoError(t, err)
		offer, err := supplier.NewOffer(uuid.New(), uuid.New(), decimal.NewFromInt(500), "g", "", "")
		require.NoError(t, err)

		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		f.offerRepo.On("FindByID", ctx, offer.ID).Return(offer, nil)

		err = f.svc.SaveSelections(ctx, b.ID, SaveSelectionsRequest{
			Selections: []SelectionPair{{RawMaterialID: uuid.New(), OfferID: offer.ID}},
		})
		require.ErrorIs(t, err, shared.ErrInvalidSelection)
		f.selectionRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		f := newSupplierFixture()

		b, err := batch.NewBatch(uuid.New())
		require.NoError(t, err)
		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		err = f.svc.SaveSelections(ctx, b.ID, SaveSelectionsRequest{})
		require.NoError(t, err)
		f.selectionRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("fails when batch does not exist", func(t *testing.T) {
		f := newSupplierFixture()
		batchID := uuid.New()
		f.batchRepo.On("FindByID", ctx, batchID).Return(nil, shared.ErrNotFound)

		err := f.svc.SaveSelections(ctx, batchID, SaveSelectionsRequest{})
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBatchSupplierService_ClearSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the override", func(t *testing.T) {
		f := newSupplierFixture()

		b, err := batch.NewBatch(uuid.New())
		require.NoError(t, err)
		rawX := uuid.New()

		f.batchRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		f.selectionRepo.On("Delete", ctx, b.ID, rawX).Return(nil)

		require.NoError(t, f.svc.ClearSelection(ctx, b.ID, rawX))
		f.selectionRepo.AssertExpectations(t)
	})

	t.Run("fails when batch does not exist", func(t *testing.T) {
		f := newSupplierFixture()
		batchID := uuid.New()
		f.batchRepo.On("FindByID", ctx, batchID).Return(nil, shared.ErrNotFound)

		err := f.svc.ClearSelection(ctx, batchID, uuid.New())
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}
