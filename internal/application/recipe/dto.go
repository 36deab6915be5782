package recipe

import (
	"time"

	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeItemRequest is one raw material line of a recipe request
type RecipeItemRequest struct {
	RawMaterialID uuid.UUID       `json:"raw_material_id" binding:"required"`
	AmountGram    decimal.Decimal `json:"amount_gram" binding:"required"`
}

// CreateRecipeRequest represents a request to create a recipe
type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=200"`
	YieldAmount decimal.Decimal     `json:"yield_amount" binding:"required"`
	YieldUnit   string              `json:"yield_unit" binding:"required,min=1,max=20"`
	Items       []RecipeItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateRecipeRequest represents a request to update a recipe
type UpdateRecipeRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=200"`
	YieldAmount decimal.Decimal     `json:"yield_amount" binding:"required"`
	YieldUnit   string              `json:"yield_unit" binding:"required,min=1,max=20"`
	Items       []RecipeItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RecipeItemResponse is one raw material line of a recipe response
type RecipeItemResponse struct {
	RawMaterialID uuid.UUID       `json:"raw_material_id"`
	AmountGram    decimal.Decimal `json:"amount_gram"`
}

// RecipeResponse represents a recipe in API responses
type RecipeResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Status      string               `json:"status"`
	YieldAmount decimal.Decimal      `json:"yield_amount"`
	YieldUnit   string               `json:"yield_unit"`
	Items       []RecipeItemResponse `json:"items"`
	TotalGram   decimal.Decimal      `json:"total_gram"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Version     int                  `json:"version"`
}

// ToRecipeResponse converts a recipe aggregate to its response
func ToRecipeResponse(r *recipe.Recipe) *RecipeResponse {
	items := make([]RecipeItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, RecipeItemResponse{
			RawMaterialID: item.RawMaterialID,
			AmountGram:    item.AmountGram,
		})
	}
	return &RecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Status:      string(r.Status),
		YieldAmount: r.YieldAmount,
		YieldUnit:   r.YieldUnit,
		Items:       items,
		TotalGram:   r.TotalGram(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.GetVersion(),
	}
}
