package catalog

import (
	"context"
	"errors"

	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product operations
type ProductService struct {
	productRepo catalog.Repository
	recipeRepo  recipe.Repository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.Repository, recipeRepo recipe.Repository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
	}
}

// Create creates a new product. A referenced recipe must exist.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.RecipeID != nil {
		if err := s.checkRecipeExists(ctx, *req.RecipeID); err != nil {
			return nil, err
		}
	}

	p, err := catalog.NewProduct(req.Name, req.SKU, req.Notes, req.RecipeID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// Update updates a product's basic information
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.Name, req.SKU, req.Notes); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// AssignRecipe links a product to the recipe that produces it
func (s *ProductService) AssignRecipe(ctx context.Context, id uuid.UUID, req AssignRecipeRequest) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRecipeExists(ctx, req.RecipeID); err != nil {
		return nil, err
	}
	if err := p.AssignRecipe(req.RecipeID); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// List retrieves products with search and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[*ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]*ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}
	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Activate marks a product as active
func (s *ProductService) Activate(ctx context.Context, id uuid.UUID) error {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Activate()
	return s.productRepo.Save(ctx, p)
}

// Deactivate marks a product as inactive
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) error {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Deactivate()
	return s.productRepo.Save(ctx, p)
}

func (s *ProductService) checkRecipeExists(ctx context.Context, recipeID uuid.UUID) error {
	if _, err := s.recipeRepo.FindByID(ctx, recipeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("RECIPE_NOT_FOUND", "Recipe not found")
		}
		return err
	}
	return nil
}
