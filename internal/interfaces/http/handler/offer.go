package handler

import (
	supplierapp "github.com/cosmo/backend/internal/application/supplier"
	"github.com/gin-gonic/gin"
)

// OfferHandler handles supplier offer API endpoints, including offer
// price history and per-material default offers
type OfferHandler struct {
	BaseHandler
	service *supplierapp.OfferService
}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler(service *supplierapp.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// RegisterRoutes registers the offer routes
func (h *OfferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	offers := rg.Group("/offers")
	{
		offers.POST("", h.Create)
		offers.GET("", h.List)
		offers.GET("/:id", h.GetByID)
		offers.PUT("/:id", h.Update)
		offers.POST("/:id/activate", h.Activate)
		offers.POST("/:id/deactivate", h.Deactivate)
		offers.POST("/:id/prices", h.AddPrice)
		offers.GET("/:id/prices", h.ListPrices)
	}

	materials := rg.Group("/raw-materials")
	{
		materials.PUT("/:id/default-offer", h.SetDefaultOffer)
		materials.GET("/:id/default-offer", h.GetDefaultOffer)
		materials.DELETE("/:id/default-offer", h.ClearDefaultOffer)
	}
}

// OfferListQuery filters the offer list by raw material or supplier
type OfferListQuery struct {
	RawMaterialID string `form:"raw_material_id" binding:"omitempty,uuid"`
	SupplierID    string `form:"supplier_id" binding:"omitempty,uuid"`
}

// Create creates a new supplier offer
func (h *OfferHandler) Create(c *gin.Context) {
	var req supplierapp.CreateOfferRequest
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

// GetByID retrieves an offer by ID
func (h *OfferHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid offer ID format")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves offers filtered by raw material or supplier
func (h *OfferHandler) List(c *gin.Context) {
	var query OfferListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	switch {
	case query.RawMaterialID != "":
		id := mustUUID(query.RawMaterialID)
		result, err := h.service.ListByRawMaterial(c.Request.Context(), id)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, result)
	case query.SupplierID != "":
		id := mustUUID(query.SupplierID)
		result, err := h.service.ListBySupplier(c.Request.Context(), id)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, result)
	default:
		h.BadRequest(c, "Either raw_material_id or supplier_id is required")
	}
}

// Update updates an offer's package definition
func (h *OfferHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid offer ID format")
		return
	}

	var req supplierapp.UpdateOfferRequest
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

// Activate marks an offer as active
func (h *OfferHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid offer ID format")
		return
	}

	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate marks an offer as inactive
func (h *OfferHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid offer ID format")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddPrice records a price row for an offer
func (h *OfferHandler) AddPrice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid offer ID format")
		return
	}

	var req supplierapp.AddOfferPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.AddPrice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// ListPrices lists the price history of an offer
func (h *OfferHandler) ListPrices(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid offer ID format")
		return
	}

	result, err := h.service.ListPrices(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// SetDefaultOffer sets the default offer for a raw material
func (h *OfferHandler) SetDefaultOffer(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	var req supplierapp.SetDefaultOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.SetDefaultOffer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetDefaultOffer retrieves the default offer of a raw material
func (h *OfferHandler) GetDefaultOffer(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	result, err := h.service.GetDefaultOffer(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ClearDefaultOffer removes the default offer of a raw material.
// Clearing a material that has no default is a no-op.
func (h *OfferHandler) ClearDefaultOffer(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	if err := h.service.ClearDefaultOffer(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
