package recipe

import (
	"context"

	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RecipeService handles recipe operations
type RecipeService struct {
	recipeRepo   recipe.Repository
	materialRepo material.RawMaterialRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo recipe.Repository, materialRepo material.RawMaterialRepository) *RecipeService {
	return &RecipeService{
		recipeRepo:   recipeRepo,
		materialRepo: materialRepo,
	}
}

// Create creates a recipe after checking every referenced raw material exists.
// The recipe and its items are persisted together.
func (s *RecipeService) Create(ctx context.Context, req CreateRecipeRequest) (*RecipeResponse, error) {
	if err := s.checkMaterialsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	r, err := recipe.NewRecipe(req.Name, req.YieldAmount, req.YieldUnit, toItemInputs(req.Items))
	if err != nil {
		return nil, err
	}
	if err := s.recipeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// Update replaces a recipe's fields and item lines
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, req UpdateRecipeRequest) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkMaterialsExist(ctx, req.Items); err != nil {
		return nil, err
	}
	if err := r.Update(req.Name, req.YieldAmount, req.YieldUnit, toItemInputs(req.Items)); err != nil {
		return nil, err
	}
	if err := s.recipeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// GetByID retrieves a recipe with its items
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// List retrieves recipes with pagination
func (s *RecipeService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[*RecipeResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	recipes, err := s.recipeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.recipeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*RecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, ToRecipeResponse(&recipes[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Activate moves a recipe to ACTIVE status
func (s *RecipeService) Activate(ctx context.Context, id uuid.UUID) error {
	r, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	r.Activate()
	return s.recipeRepo.Save(ctx, r)
}

func (s *RecipeService) checkMaterialsExist(ctx context.Context, items []RecipeItemRequest) error {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.RawMaterialID] {
			seen[item.RawMaterialID] = true
			ids = append(ids, item.RawMaterialID)
		}
	}

	materials, err := s.materialRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(materials) != len(ids) {
		return shared.NewDomainError("RAW_MATERIAL_NOT_FOUND", "Recipe references a raw material that does not exist")
	}
	return nil
}

func toItemInputs(items []RecipeItemRequest) []recipe.ItemInput {
	inputs := make([]recipe.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, recipe.ItemInput{
			RawMaterialID: item.RawMaterialID,
			AmountGram:    item.AmountGram,
		})
	}
	return inputs
}
