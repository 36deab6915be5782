package batch

import (
	"context"
	"time"

	"github.com/cosmo/backend/internal/application/pricing"
	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostingService computes the raw material cost breakdown of a batch as of
// its pricing date.
type CostingService struct {
	batchRepo    batch.Repository
	templateRepo batch.TemplateRepository
	productRepo  catalog.Repository
	recipeRepo   recipe.Repository
	priceChain   *pricing.Chain
}

// NewCostingService creates a new CostingService
func NewCostingService(
	batchRepo batch.Repository,
	templateRepo batch.TemplateRepository,
	productRepo catalog.Repository,
	recipeRepo recipe.Repository,
	priceChain *pricing.Chain,
) *CostingService {
	return &CostingService{
		batchRepo:    batchRepo,
		templateRepo: templateRepo,
		productRepo:  productRepo,
		recipeRepo:   recipeRepo,
		priceChain:   priceChain,
	}
}

// Cost computes the cost breakdown of a batch. A PLANNED batch is priced as
// of today; an OPEN batch as of its pinned pricing date. Raw materials no
// pricing tier can resolve appear as explicit zero-cost rows.
func (s *CostingService) Cost(ctx context.Context, batchID uuid.UUID) (*CostResponse, error) {
	b, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	pricingDate := b.EffectivePricingDate(time.Now())

	tpl, err := s.templateRepo.FindByID(ctx, b.TemplateID)
	if err != nil {
		return nil, err
	}

	recipeItemsByProduct, err := s.loadRecipeItems(ctx, tpl.Items)
	if err != nil {
		return nil, err
	}

	needs := batch.AggregateNeeds(tpl.Items, recipeItemsByProduct)

	unitPrices := make(map[uuid.UUID]decimal.Decimal, len(needs))
	for rawMaterialID := range needs {
		price, err := s.priceChain.UnitPrice(ctx, b.ID, rawMaterialID, pricingDate)
		if err != nil {
			return nil, err
		}
		unitPrices[rawMaterialID] = price
	}

	breakdown := batch.BuildCostBreakdown(needs, func(rawMaterialID uuid.UUID) decimal.Decimal {
		return unitPrices[rawMaterialID]
	})

	materials := make([]CostRowResponse, 0, len(breakdown.Rows))
	for _, row := range breakdown.Rows {
		materials = append(materials, CostRowResponse{
			RawMaterialID: row.RawMaterialID,
			Grams:         row.Grams,
			UnitPrice:     row.UnitPrice,
			Cost:          row.Cost,
		})
	}

	return &CostResponse{
		BatchID:        b.ID,
		PricingDate:    pricingDate.Format(dateLayout),
		Materials:      materials,
		MaterialsTotal: breakdown.Total,
	}, nil
}

// loadRecipeItems maps each template product to the items of its recipe.
// Products without a recipe are simply absent from the map.
func (s *CostingService) loadRecipeItems(ctx context.Context, items []batch.TemplateItem) (map[uuid.UUID][]recipe.RecipeItem, error) {
	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	recipeIDs := make([]uuid.UUID, 0, len(products))
	recipeByProduct := make(map[uuid.UUID]uuid.UUID, len(products))
	for _, p := range products {
		if p.RecipeID == nil {
			continue
		}
		recipeByProduct[p.ID] = *p.RecipeID
		recipeIDs = append(recipeIDs, *p.RecipeID)
	}

	recipes, err := s.recipeRepo.FindByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	itemsByRecipe := make(map[uuid.UUID][]recipe.RecipeItem, len(recipes))
	for _, r := range recipes {
		itemsByRecipe[r.ID] = r.Items
	}

	result := make(map[uuid.UUID][]recipe.RecipeItem, len(recipeByProduct))
	for productID, recipeID := range recipeByProduct {
		if recipeItems, ok := itemsByRecipe[recipeID]; ok {
			result[productID] = recipeItems
		}
	}
	return result, nil
}
