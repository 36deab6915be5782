package handler

import (
	materialapp "github.com/cosmo/backend/internal/application/material"
	"github.com/gin-gonic/gin"
)

// RawMaterialHandler handles raw material API endpoints
type RawMaterialHandler struct {
	BaseHandler
	service *materialapp.RawMaterialService
}

// NewRawMaterialHandler creates a new RawMaterialHandler
func NewRawMaterialHandler(service *materialapp.RawMaterialService) *RawMaterialHandler {
	return &RawMaterialHandler{service: service}
}

// RegisterRoutes registers the raw material routes
func (h *RawMaterialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/raw-materials")
	{
		materials.POST("", h.Create)
		materials.GET("", h.List)
		materials.GET("/:id", h.GetByID)
		materials.PUT("/:id", h.Update)
		materials.POST("/:id/activate", h.Activate)
		materials.POST("/:id/deactivate", h.Deactivate)
		materials.POST("/:id/manual-prices", h.AddManualPrice)
		materials.GET("/:id/manual-prices", h.ListManualPrices)
	}
}

// Create creates a new raw material
func (h *RawMaterialHandler) Create(c *gin.Context) {
	var req materialapp.CreateRawMaterialRequest
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

// GetByID retrieves a raw material by ID
func (h *RawMaterialHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of raw materials
func (h *RawMaterialHandler) List(c *gin.Context) {
	var filter materialapp.RawMaterialListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(c, result)
}

// Update updates a raw material
func (h *RawMaterialHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	var req materialapp.UpdateRawMaterialRequest
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

// Activate marks a raw material as active
func (h *RawMaterialHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate marks a raw material as inactive
func (h *RawMaterialHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddManualPrice records a manual fallback price for a raw material
func (h *RawMaterialHandler) AddManualPrice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	var req materialapp.AddManualPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.AddManualPrice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// ListManualPrices lists the manual price history of a raw material
func (h *RawMaterialHandler) ListManualPrices(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	result, err := h.service.ListManualPrices(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
