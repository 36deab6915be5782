package handler

import (
	supplierapp "github.com/cosmo/backend/internal/application/supplier"
	"github.com/gin-gonic/gin"
)

// SupplierHandler handles supplier API endpoints
type SupplierHandler struct {
	BaseHandler
	service *supplierapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(service *supplierapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// RegisterRoutes registers the supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/:id", h.GetByID)
		suppliers.PUT("/:id", h.Update)
		suppliers.POST("/:id/activate", h.Activate)
		suppliers.POST("/:id/deactivate", h.Deactivate)
	}
}

// Create creates a new supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierapp.CreateSupplierRequest
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

// GetByID retrieves a supplier by ID
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	var filter supplierapp.SupplierListFilter
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

// Update updates a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req supplierapp.UpdateSupplierRequest
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

// Activate marks a supplier as active
func (h *SupplierHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate marks a supplier as inactive. Offers of inactive suppliers
// stay in place but stop being selectable or priceable.
func (h *SupplierHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
