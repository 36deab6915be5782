package handler

import (
	recipeapp "github.com/cosmo/backend/internal/application/recipe"
	"github.com/cosmo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RecipeHandler handles recipe API endpoints
type RecipeHandler struct {
	BaseHandler
	service *recipeapp.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(service *recipeapp.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.GET("", h.List)
		recipes.GET("/:id", h.GetByID)
		recipes.PUT("/:id", h.Update)
		recipes.POST("/:id/activate", h.Activate)
	}
}

// Create creates a new recipe with its ingredient lines
func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeapp.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID retrieves a recipe by ID
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of recipes
func (h *RecipeHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(c, result)
}

// Update replaces a recipe's header fields and ingredient lines
func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	var req recipeapp.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Activate marks a draft recipe as active
func (h *RecipeHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
