package handler

import (
	batchapp "github.com/cosmo/backend/internal/application/batch"
	"github.com/gin-gonic/gin"
)

// BatchHandler handles batch lifecycle, supplier configuration and
// costing API endpoints
type BatchHandler struct {
	BaseHandler
	batches   *batchapp.BatchService
	costing   *batchapp.CostingService
	suppliers *batchapp.BatchSupplierService
}

// NewBatchHandler creates a new BatchHandler
func NewBatchHandler(
	batches *batchapp.BatchService,
	costing *batchapp.CostingService,
	suppliers *batchapp.BatchSupplierService,
) *BatchHandler {
	return &BatchHandler{
		batches:   batches,
		costing:   costing,
		suppliers: suppliers,
	}
}

// RegisterRoutes registers the batch routes
func (h *BatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	batches := rg.Group("/batches")
	{
		batches.POST("", h.Create)
		batches.GET("", h.List)
		batches.GET("/:id", h.GetByID)
		batches.POST("/:id/open", h.Open)
		batches.GET("/:id/cost", h.Cost)
		batches.GET("/:id/supplier-config", h.GetSupplierConfig)
		batches.PUT("/:id/supplier-config", h.SaveSupplierConfig)
		batches.DELETE("/:id/supplier-config/:materialId", h.ClearSelection)
	}
}

// Create creates a new planned batch from a template
func (h *BatchHandler) Create(c *gin.Context) {
	var req batchapp.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.batches.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID retrieves a batch by ID
func (h *BatchHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	result, err := h.batches.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of batches
func (h *BatchHandler) List(c *gin.Context) {
	filter := batchapp.BatchListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.batches.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(c, result)
}

// Open opens a batch, pinning its pricing date to the current date.
// Opening an already open batch re-pins the pricing date.
func (h *BatchHandler) Open(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	result, err := h.batches.Open(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Cost computes the raw material cost breakdown of a batch at its
// effective pricing date
func (h *BatchHandler) Cost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	result, err := h.costing.Cost(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetSupplierConfig returns the supplier selection view of a batch:
// every raw material the batch needs, its selectable offers and the
// currently effective selection
func (h *BatchHandler) GetSupplierConfig(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	result, err := h.suppliers.GetConfig(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// SaveSupplierConfig upserts per-material offer overrides for a batch
func (h *BatchHandler) SaveSupplierConfig(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req batchapp.SaveSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.suppliers.SaveSelections(c.Request.Context(), id, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ClearSelection removes the offer override for one raw material of a
// batch, falling back to the material's default offer
func (h *BatchHandler) ClearSelection(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	materialID, err := parseIDParam(c, "materialId")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	if err := h.suppliers.ClearSelection(c.Request.Context(), id, materialID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
