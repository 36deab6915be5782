package batch

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchSupplierService serves the per-batch supplier selection view and
// maintains the selection overrides.
type BatchSupplierService struct {
	batchRepo        batch.Repository
	templateRepo     batch.TemplateRepository
	productRepo      catalog.Repository
	recipeRepo       recipe.Repository
	materialRepo     material.RawMaterialRepository
	supplierRepo     supplier.SupplierRepository
	offerRepo        supplier.OfferRepository
	defaultOfferRepo supplier.DefaultOfferRepository
	selectionRepo    batch.SelectionRepository
	txScope          TransactionScope
}

// NewBatchSupplierService creates a new BatchSupplierService
func NewBatchSupplierService(
	batchRepo batch.Repository,
	templateRepo batch.TemplateRepository,
	productRepo catalog.Repository,
	recipeRepo recipe.Repository,
	materialRepo material.RawMaterialRepository,
	supplierRepo supplier.SupplierRepository,
	offerRepo supplier.OfferRepository,
	defaultOfferRepo supplier.DefaultOfferRepository,
	selectionRepo batch.SelectionRepository,
	txScope TransactionScope,
) *BatchSupplierService {
	return &BatchSupplierService{
		batchRepo:        batchRepo,
		templateRepo:     templateRepo,
		productRepo:      productRepo,
		recipeRepo:       recipeRepo,
		materialRepo:     materialRepo,
		supplierRepo:     supplierRepo,
		offerRepo:        offerRepo,
		defaultOfferRepo: defaultOfferRepo,
		selectionRepo:    selectionRepo,
		txScope:          txScope,
	}
}

// GetConfig assembles the supplier selection view of a batch: its products
// sorted by name, each product's ingredients with the currently selected
// offer, and per raw material every active offer of an active supplier
// sorted by supplier name then package size.
func (s *BatchSupplierService) GetConfig(ctx context.Context, batchID uuid.UUID) (*SupplierConfigResponse, error) {
	b, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	pricingDate := b.EffectivePricingDate(time.Now())

	tpl, err := s.templateRepo.FindByID(ctx, b.TemplateID)
	if err != nil {
		return nil, err
	}

	quantities := make(map[uuid.UUID]int, len(tpl.Items))
	productIDs := make([]uuid.UUID, 0, len(tpl.Items))
	for _, item := range tpl.Items {
		if _, seen := quantities[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID.String() < products[j].ID.String()
	})

	selections, err := s.selectionRepo.FindByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	overrides := make(map[uuid.UUID]uuid.UUID, len(selections))
	for _, sel := range selections {
		overrides[sel.RawMaterialID] = sel.OfferID
	}

	offerOptions := make(map[uuid.UUID][]OfferOptionResponse)
	materialNames := make(map[uuid.UUID]string)
	selectedOffers := make(map[uuid.UUID]*uuid.UUID)

	productConfigs := make([]ProductConfigResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		ingredients, err := s.productIngredients(ctx, p, overrides, offerOptions, materialNames, selectedOffers)
		if err != nil {
			return nil, err
		}
		productConfigs = append(productConfigs, ProductConfigResponse{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    quantities[p.ID],
			Ingredients: ingredients,
		})
	}

	return &SupplierConfigResponse{
		BatchID:     b.ID,
		PricingDate: pricingDate.Format(dateLayout),
		Products:    productConfigs,
	}, nil
}

// productIngredients builds the ingredient rows of one product, aggregating
// duplicate raw material lines and memoizing per-raw-material lookups across
// products.
func (s *BatchSupplierService) productIngredients(
	ctx context.Context,
	p *catalog.Product,
	overrides map[uuid.UUID]uuid.UUID,
	offerOptions map[uuid.UUID][]OfferOptionResponse,
	materialNames map[uuid.UUID]string,
	selectedOffers map[uuid.UUID]*uuid.UUID,
) ([]IngredientConfigResponse, error) {
	if p.RecipeID == nil {
		return []IngredientConfigResponse{}, nil
	}

	r, err := s.recipeRepo.FindByID(ctx, *p.RecipeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return []IngredientConfigResponse{}, nil
		}
		return nil, err
	}

	grams := make(map[uuid.UUID]decimal.Decimal)
	order := make([]uuid.UUID, 0, len(r.Items))
	for _, item := range r.Items {
		if _, seen := grams[item.RawMaterialID]; !seen {
			order = append(order, item.RawMaterialID)
		}
		grams[item.RawMaterialID] = grams[item.RawMaterialID].Add(item.AmountGram)
	}

	ingredients := make([]IngredientConfigResponse, 0, len(order))
	for _, rawMaterialID := range order {
		name, err := s.materialName(ctx, rawMaterialID, materialNames)
		if err != nil {
			return nil, err
		}
		options, err := s.offersFor(ctx, rawMaterialID, offerOptions)
		if err != nil {
			return nil, err
		}
		selected, err := s.selectedOffer(ctx, rawMaterialID, overrides, selectedOffers)
		if err != nil {
			return nil, err
		}

		ingredients = append(ingredients, IngredientConfigResponse{
			RawMaterialID:       rawMaterialID,
			RawMaterialName:     name,
			GramsPerProductUnit: grams[rawMaterialID],
			SelectedOfferID:     selected,
			Offers:              options,
		})
	}
	return ingredients, nil
}

func (s *BatchSupplierService) materialName(ctx context.Context, rawMaterialID uuid.UUID, cache map[uuid.UUID]string) (string, error) {
	if name, ok := cache[rawMaterialID]; ok {
		return name, nil
	}
	m, err := s.materialRepo.FindByID(ctx, rawMaterialID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			cache[rawMaterialID] = ""
			return "", nil
		}
		return "", err
	}
	cache[rawMaterialID] = m.Name
	return m.Name, nil
}

// offersFor lists the selectable offers of a raw material: active offers of
// active suppliers, sorted by supplier name then package size.
func (s *BatchSupplierService) offersFor(ctx context.Context, rawMaterialID uuid.UUID, cache map[uuid.UUID][]OfferOptionResponse) ([]OfferOptionResponse, error) {
	if options, ok := cache[rawMaterialID]; ok {
		return options, nil
	}

	offers, err := s.offerRepo.FindActiveByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}

	supplierNames := make(map[uuid.UUID]string)
	options := make([]OfferOptionResponse, 0, len(offers))
	for _, o := range offers {
		name, ok := supplierNames[o.SupplierID]
		if !ok {
			sup, err := s.supplierRepo.FindByID(ctx, o.SupplierID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					continue
				}
				return nil, err
			}
			if !sup.IsActive {
				supplierNames[o.SupplierID] = ""
				continue
			}
			name = sup.Name
			supplierNames[o.SupplierID] = name
		}
		if name == "" {
			continue
		}
		options = append(options, OfferOptionResponse{
			OfferID:      o.ID,
			SupplierID:   o.SupplierID,
			SupplierName: name,
			PackageSize:  o.PackageSize,
			PackageUnit:  o.PackageUnit,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].SupplierName != options[j].SupplierName {
			return options[i].SupplierName < options[j].SupplierName
		}
		return options[i].PackageSize.LessThan(options[j].PackageSize)
	})

	cache[rawMaterialID] = options
	return options, nil
}

// selectedOffer resolves the currently selected offer of a raw material:
// batch override first, default offer second, nil when neither exists. No
// price lookup happens here.
func (s *BatchSupplierService) selectedOffer(ctx context.Context, rawMaterialID uuid.UUID, overrides map[uuid.UUID]uuid.UUID, cache map[uuid.UUID]*uuid.UUID) (*uuid.UUID, error) {
	if offerID, ok := overrides[rawMaterialID]; ok {
		id := offerID
		return &id, nil
	}
	if selected, ok := cache[rawMaterialID]; ok {
		return selected, nil
	}

	def, err := s.defaultOfferRepo.FindByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			cache[rawMaterialID] = nil
			return nil, nil
		}
		return nil, err
	}
	id := def.OfferID
	cache[rawMaterialID] = &id
	return &id, nil
}

// SaveSelections upserts selection overrides for a batch in one transaction.
// Every pair is validated against its offer before any write: an offer that
// does not sell the raw material rejects the whole request. An empty list is
// a no-op.
func (s *BatchSupplierService) SaveSelections(ctx context.Context, batchID uuid.UUID, req SaveSelectionsRequest) error {
	if _, err := s.batchRepo.FindByID(ctx, batchID); err != nil {
		return err
	}
	if len(req.Selections) == 0 {
		return nil
	}

	rows := make([]*batch.SupplierSelection, 0, len(req.Selections))
	for _, pair := range req.Selections {
		offer, err := s.offerRepo.FindByID(ctx, pair.OfferID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("OFFER_NOT_FOUND", "Offer not found")
			}
			return err
		}
		if offer.RawMaterialID != pair.RawMaterialID {
			return shared.ErrInvalidSelection
		}
		sel, err := batch.NewSupplierSelection(batchID, pair.RawMaterialID, pair.OfferID)
		if err != nil {
			return err
		}
		rows = append(rows, sel)
	}

	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, sel := range rows {
			if err := repos.SelectionRepo().Upsert(ctx, sel); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearSelection removes the override for one raw material of a batch.
// Clearing an absent override is not an error.
func (s *BatchSupplierService) ClearSelection(ctx context.Context, batchID, rawMaterialID uuid.UUID) error {
	if _, err := s.batchRepo.FindByID(ctx, batchID); err != nil {
		return err
	}
	return s.selectionRepo.Delete(ctx, batchID, rawMaterialID)
}
