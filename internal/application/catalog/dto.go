package catalog

import (
	"time"

	"github.com/cosmo/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=200"`
	SKU      string     `json:"sku" binding:"max=100"`
	RecipeID *uuid.UUID `json:"recipe_id"`
	Notes    string     `json:"notes" binding:"max=2000"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	SKU   string `json:"sku" binding:"max=100"`
	Notes string `json:"notes" binding:"max=2000"`
}

// AssignRecipeRequest represents a request to link a product to a recipe
type AssignRecipeRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	SKU       string     `json:"sku"`
	RecipeID  *uuid.UUID `json:"recipe_id"`
	Notes     string     `json:"notes"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// ToProductResponse converts a product aggregate to its response
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		RecipeID:  p.RecipeID,
		Notes:     p.Notes,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.GetVersion(),
	}
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
